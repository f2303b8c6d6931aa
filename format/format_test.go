package format_test

import (
	"testing"

	"github.com/telefield/telefield/format"
	"github.com/telefield/telefield/plan"
)

func country(t *testing.T, iso2 string) *plan.Country {
	t.Helper()
	c, ok := plan.ByRegion(iso2)
	if !ok {
		t.Fatalf("plan.ByRegion(%q) not found", iso2)
	}
	return &c
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		region  string
		visible bool
		want    string
	}{
		{"empty raw", "", "US", true, ""},
		{"us visible", "+12024561111", "US", true, "+1 202-456-1111"},
		{"us hidden", "+12024561111", "US", false, "202-456-1111"},
		{"ch visible", "+41791234567", "CH", true, "+41 79 123 45 67"},
		{"ch hidden", "+41791234567", "CH", false, "79 123 45 67"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var ctry *plan.Country
			if c.region != "" {
				ctry = country(t, c.region)
			}
			if got := format.Format(c.raw, ctry, c.visible); got != c.want {
				t.Errorf("format.Format(%q, %s, %v) = %q, want %q",
					c.raw, c.region, c.visible, got, c.want)
			}
		})
	}

	t.Run("nil country", func(t *testing.T) {
		t.Parallel()

		if got := format.Format("+123", nil, true); got != "" {
			t.Errorf("format.Format with nil country = %q, want \"\"", got)
		}
	})
}

func TestCommit(t *testing.T) {
	t.Parallel()

	us := country(t, "US")

	cases := []struct {
		name    string
		raw     string
		country *plan.Country
		visible bool
		want    string
	}{
		{"valid visible international", "+12024561111", us, true, "+1 202-456-1111"},
		{"valid hidden national", "+12024561111", us, false, "(202) 456-1111"},
		{"unparseable unchanged", "abc", us, true, "abc"},
		{"nil country unchanged", "+12024561111", nil, true, "+12024561111"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := format.Commit(c.raw, c.country, c.visible); got != c.want {
				t.Errorf("format.Commit(%q) = %q, want %q", c.raw, got, c.want)
			}
		})
	}

	t.Run("incomplete falls back to as-you-type", func(t *testing.T) {
		t.Parallel()

		raw := "+1202456"
		want := format.Format(raw, us, true)
		if got := format.Commit(raw, us, true); got != want {
			t.Errorf("format.Commit(%q) = %q, want as-you-type %q", raw, got, want)
		}
	})
}

func TestUnformat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		displayed string
		region    string
		visible   bool
		want      string
	}{
		{"visible restores plus", "+1 202-456-1111", "US", true, "+12024561111"},
		{"hidden prepends code", "202-456-1111", "US", false, "+12024561111"},
		{"german trunk zero dropped", "030 901820", "DE", false, "+4930901820"},
		{"british trunk zero dropped", "020 7946 0958", "GB", false, "+442079460958"},
		{"italian leading zero kept", "02 1234 5678", "IT", false, "+390212345678"},
		{"no digits", "---", "US", true, ""},
		{"empty", "", "US", false, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := format.Unformat(c.displayed, country(t, c.region), c.visible); got != c.want {
				t.Errorf("format.Unformat(%q, %s, %v) = %q, want %q",
					c.displayed, c.region, c.visible, got, c.want)
			}
		})
	}
}

// Formatting must be idempotent through an unformat round trip for regions
// without ambiguous trunk stripping.
func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		region  string
		visible bool
	}{
		{"us visible", "+12024561111", "US", true},
		{"us hidden", "+12024561111", "US", false},
		{"ch visible", "+41791234567", "CH", true},
		{"ch hidden", "+41791234567", "CH", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctry := country(t, c.region)
			once := format.Format(c.raw, ctry, c.visible)
			again := format.Format(format.Unformat(once, ctry, c.visible), ctry, c.visible)
			if once != again {
				t.Errorf("round trip diverged: first %q, second %q", once, again)
			}
		})
	}
}
