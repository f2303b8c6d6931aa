package telefield

import (
	"strings"
)

// LabelStrategy selects which rendering a [Label] shows for a parsed
// number.
type LabelStrategy string

const (
	// NationalForOwnCountryOnly shows the national rendering when the
	// number belongs to the label's own country and the international
	// rendering otherwise. This is the default.
	NationalForOwnCountryOnly LabelStrategy = "national_for_own_country_only"
	// AlwaysNational always shows the national rendering.
	AlwaysNational LabelStrategy = "always_national"
	// AlwaysInternational always shows the international rendering.
	AlwaysInternational LabelStrategy = "always_international"
)

// Label turns snapshots into read-only display text. Unlike a [Field] it
// never rejects input: values that failed to parse are still shown, as the
// raw digits with the country prefix stripped when the country is known.
type Label struct {
	strategy  LabelStrategy
	ownRegion string
}

// NewLabel creates a label. ownRegion is the ISO 3166-1 alpha-2 region the
// NationalForOwnCountryOnly strategy treats as local; "" falls back to
// [DefaultRegion]. An empty strategy means NationalForOwnCountryOnly.
func NewLabel(strategy LabelStrategy, ownRegion string) *Label {
	if strategy == "" {
		strategy = NationalForOwnCountryOnly
	}
	if ownRegion == "" {
		ownRegion = DefaultRegion
	}
	return &Label{strategy: strategy, ownRegion: ownRegion}
}

// Render returns the display text for a snapshot.
func (l *Label) Render(snap Snapshot) string {
	if snap.Empty() {
		return ""
	}
	if snap.Number == nil {
		return fallbackText(snap)
	}

	switch l.strategy {
	case AlwaysNational:
		return snap.National
	case AlwaysInternational:
		return snap.International
	default:
		if snap.Country != nil && snap.Country.Region == l.ownRegion {
			return snap.National
		}
		return snap.International
	}
}

// Watch binds the label to a field: fn receives the rendered text for the
// current snapshot immediately and again on every change. The returned
// cancel function unbinds.
func (l *Label) Watch(f *Field, fn func(string)) (cancel func()) {
	if fn == nil {
		panic(NewInvalidArgumentError("nil label callback"))
	}
	fn(l.Render(f.Snapshot()))
	return f.OnChange(func(snap Snapshot) {
		fn(l.Render(snap))
	})
}

// fallbackText shows an unparseable value as bare digits: the country
// prefix, when resolved, is stripped so the reader sees only the dialed
// part.
func fallbackText(snap Snapshot) string {
	raw := snap.Raw
	if snap.Country != nil {
		raw = strings.TrimPrefix(raw, snap.Country.CallingCodePrefix())
	}
	return strings.TrimPrefix(raw, "+")
}
