package plan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/telefield/telefield/plan"
)

func TestByRegion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		region string
		want   plan.Country
		wantOK bool
	}{
		{"switzerland", "CH", plan.Country{CallingCode: 41, Region: "CH"}, true},
		{"united states", "US", plan.Country{CallingCode: 1, Region: "US"}, true},
		{"canada", "CA", plan.Country{CallingCode: 1, Region: "CA"}, true},
		{"unknown", "ZZ", plan.Country{}, false},
		{"empty", "", plan.Country{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := plan.ByRegion(c.region)
			if ok != c.wantOK {
				t.Fatalf("plan.ByRegion(%q) ok = %v, want %v", c.region, ok, c.wantOK)
			}
			if got.Region != c.want.Region || got.CallingCode != c.want.CallingCode {
				t.Errorf("plan.ByRegion(%q) = %+v, want region %q code %d",
					c.region, got, c.want.Region, c.want.CallingCode)
			}
		})
	}
}

func TestByCallingCode(t *testing.T) {
	t.Parallel()

	regionsOf := func(cs []plan.Country) []string {
		rs := make([]string, 0, len(cs))
		for _, c := range cs {
			rs = append(rs, c.Region)
		}
		return rs
	}

	t.Run("shared code 44", func(t *testing.T) {
		t.Parallel()

		got := regionsOf(plan.ByCallingCode(44))
		want := []string{"GG", "IM", "JE", "GB"}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("plan.ByCallingCode(44) regions diff (-got +want):\n%v", diff)
		}
	})

	t.Run("unassigned code", func(t *testing.T) {
		t.Parallel()

		if got := plan.ByCallingCode(999); len(got) != 0 {
			t.Errorf("plan.ByCallingCode(999) = %v, want empty", got)
		}
	})
}

func TestCountry_DialPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		region string
		want   string
	}{
		{"no area codes", "CH", "+41"},
		{"first area code", "CA", "+1204"},
		{"single area code", "AS", "+1684"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			country, ok := plan.ByRegion(c.region)
			if !ok {
				t.Fatalf("plan.ByRegion(%q) not found", c.region)
			}
			if got := country.DialPrefix(); got != c.want {
				t.Errorf("country.DialPrefix() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCountry_HasAreaCode(t *testing.T) {
	t.Parallel()

	ca, _ := plan.ByRegion("CA")
	us, _ := plan.ByRegion("US")

	cases := []struct {
		name    string
		country plan.Country
		ndc     string
		want    bool
	}{
		{"canada 587", ca, "587", true},
		{"canada 202", ca, "202", false},
		{"us has none", us, "202", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.country.HasAreaCode(c.ndc); got != c.want {
				t.Errorf("country.HasAreaCode(%q) = %v, want %v", c.ndc, got, c.want)
			}
		})
	}
}
