package telefield

import (
	"log/slog"

	"github.com/nyaruka/phonenumbers/v2"

	"github.com/telefield/telefield/internal/log"
	"github.com/telefield/telefield/plan"
)

// DefaultRegion is the parse fallback used when no region is configured
// and the value carries no "+" country prefix.
const DefaultRegion = "US"

// DefaultMissingCountryPrompt is the prompt text shown while no country
// has been resolved yet.
const DefaultMissingCountryPrompt = "Select a country ..."

// FieldOptions contains options for a [Field].
type FieldOptions struct {
	// AvailableCountries is the ordered set of selectable countries.
	// Duplicates are ignored. If empty, the full catalog is used.
	AvailableCountries []plan.Country
	// PreferredCountries is the ordered priority list used for resolver
	// tie-breaks. Entries outside AvailableCountries are dropped.
	PreferredCountries []plan.Country
	// DefaultRegion is the ISO2 region used as a parse hint for values
	// without a "+" prefix. If "", [DefaultRegion] is used.
	DefaultRegion string
	// ExpectedType, when non-nil, is the number type the field expects.
	ExpectedType *phonenumbers.PhoneNumberType
	// CountryCodeVisible determines whether the "+<calling code>" prefix
	// stays part of the displayed text. If nil, defaults to true.
	CountryCodeVisible *bool
	// LiveFormatting re-formats the displayed text on every edit instead
	// of only on commit.
	LiveFormatting bool
	// ValidityIncludesTypeCheck makes validity require the expected type.
	ValidityIncludesTypeCheck bool
	// ShowExampleNumbers adds an example number to the prompt text once a
	// country is known. If nil, defaults to true.
	ShowExampleNumbers *bool
	// MissingCountryPrompt overrides [DefaultMissingCountryPrompt].
	MissingCountryPrompt string
	// Surface is the host text widget the engine writes into. Optional.
	Surface Surface
	// Log is the logger that will be used with the field.
	// If nil, [log.Noop] is used; the engine never logs on its own account.
	Log *slog.Logger
}

func (o *FieldOptions) available() []plan.Country {
	if o == nil || len(o.AvailableCountries) == 0 {
		return plan.All()
	}
	return dedupeCountries(o.AvailableCountries)
}

func (o *FieldOptions) preferred(available []plan.Country) []plan.Country {
	if o == nil {
		return nil
	}
	return filterCountries(o.PreferredCountries, available)
}

func (o *FieldOptions) defaultRegion() string {
	if o == nil || o.DefaultRegion == "" {
		return DefaultRegion
	}
	return o.DefaultRegion
}

func (o *FieldOptions) expectedType() *phonenumbers.PhoneNumberType {
	if o == nil {
		return nil
	}
	return o.ExpectedType
}

func (o *FieldOptions) countryCodeVisible() bool {
	if o == nil || o.CountryCodeVisible == nil {
		return true
	}
	return *o.CountryCodeVisible
}

func (o *FieldOptions) liveFormatting() bool {
	return o != nil && o.LiveFormatting
}

func (o *FieldOptions) validityIncludesTypeCheck() bool {
	return o != nil && o.ValidityIncludesTypeCheck
}

func (o *FieldOptions) showExampleNumbers() bool {
	if o == nil || o.ShowExampleNumbers == nil {
		return true
	}
	return *o.ShowExampleNumbers
}

func (o *FieldOptions) missingCountryPrompt() string {
	if o == nil || o.MissingCountryPrompt == "" {
		return DefaultMissingCountryPrompt
	}
	return o.MissingCountryPrompt
}

func (o *FieldOptions) surface() Surface {
	if o == nil {
		return nil
	}
	return o.Surface
}

func (o *FieldOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

func dedupeCountries(cs []plan.Country) []plan.Country {
	out := make([]plan.Country, 0, len(cs))
	for _, c := range cs {
		dup := false
		for _, seen := range out {
			if seen.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

func filterCountries(cs, within []plan.Country) []plan.Country {
	var out []plan.Country
	for _, c := range cs {
		for _, w := range within {
			if w.Equal(c) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
