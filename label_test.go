package telefield_test

import (
	"testing"

	"github.com/telefield/telefield"
)

func TestLabelRender(t *testing.T) {
	t.Parallel()

	ch := country(t, "CH")

	snapshotFor := func(t *testing.T, raw string) telefield.Snapshot {
		t.Helper()

		f := newField(t, nil)
		f.SetValue(raw)
		return f.Snapshot()
	}

	cases := []struct {
		name      string
		strategy  telefield.LabelStrategy
		ownRegion string
		raw       string
		want      string
	}{
		{"own country national", telefield.NationalForOwnCountryOnly, "US", "+12024561111", "(202) 456-1111"},
		{"foreign international", telefield.NationalForOwnCountryOnly, "CH", "+12024561111", "+1 202-456-1111"},
		{"always national", telefield.AlwaysNational, "CH", "+12024561111", "(202) 456-1111"},
		{"always international", telefield.AlwaysInternational, "US", "+12024561111", "+1 202-456-1111"},
		{"default strategy", "", "US", "+12024561111", "(202) 456-1111"},
		{"empty", telefield.AlwaysNational, "US", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			l := telefield.NewLabel(c.strategy, c.ownRegion)
			if got := l.Render(snapshotFor(t, c.raw)); got != c.want {
				t.Errorf("Render() = %q, want %q", got, c.want)
			}
		})
	}

	t.Run("unparseable falls back to bare digits", func(t *testing.T) {
		t.Parallel()

		l := telefield.NewLabel(telefield.NationalForOwnCountryOnly, "US")
		snap := telefield.Snapshot{Raw: "+41", Country: &ch}
		if got, want := l.Render(snap), ""; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}

		snap = telefield.Snapshot{Raw: "+417912", Country: &ch}
		if got, want := l.Render(snap), "7912"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})
}

func TestLabelWatch(t *testing.T) {
	t.Parallel()

	f := newField(t, nil)
	l := telefield.NewLabel(telefield.NationalForOwnCountryOnly, "US")

	var got []string
	cancel := l.Watch(f, func(text string) { got = append(got, text) })

	f.SetValue("+12024561111")
	cancel()
	f.SetValue("+41791234567")

	want := []string{"", "(202) 456-1111"}
	if len(got) != len(want) {
		t.Fatalf("watched %d texts %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
