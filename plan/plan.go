// Package plan holds the static numbering-plan catalog: every supported
// country with its international calling code, ISO 3166-1 alpha-2 region
// and, where a calling code is shared, the national destination codes that
// disambiguate it. The catalog is a flat immutable table; all matching and
// scoring logic lives in free functions operating over it.
package plan

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Country is a single numbering-plan entry. Identity is the Region; two
// entries never share a region except where the original plan does
// (e.g. Tanzania/Zanzibar both map to "TZ").
type Country struct {
	// CallingCode is the 1-3 digit international dialing prefix, without "+".
	CallingCode int
	// Region is the ISO 3166-1 alpha-2 code, e.g. "CH".
	Region string
	// AreaCodes are the national destination codes assigned to this entry
	// within a shared calling code, ordered. Empty for countries that own
	// their calling code outright.
	AreaCodes []string
}

// CallingCodePrefix returns the "+"-prefixed calling code, e.g. "+41".
func (c Country) CallingCodePrefix() string {
	return "+" + strconv.Itoa(c.CallingCode)
}

// DefaultAreaCode returns the first area code, if the country has any.
func (c Country) DefaultAreaCode() (string, bool) {
	if len(c.AreaCodes) == 0 {
		return "", false
	}
	return c.AreaCodes[0], true
}

// DialPrefix returns the calling-code prefix extended with the default
// area code when one exists, e.g. "+1204" for Canada.
func (c Country) DialPrefix() string {
	ac, _ := c.DefaultAreaCode()
	return c.CallingCodePrefix() + ac
}

// HasAreaCode reports whether ndc is one of the country's area codes.
func (c Country) HasAreaCode(ndc string) bool {
	return slices.Contains(c.AreaCodes, ndc)
}

// matchPrefix reports whether digits start with the country's calling code,
// optionally extended by one of its area codes.
func (c Country) matchPrefix(digits string) (areaMatch bool, ok bool) {
	cc := strconv.Itoa(c.CallingCode)
	if !strings.HasPrefix(digits, cc) {
		return false, false
	}
	rest := digits[len(cc):]
	for _, ac := range c.AreaCodes {
		if strings.HasPrefix(rest, ac) {
			return true, true
		}
	}
	if len(c.AreaCodes) == 0 {
		return false, true
	}
	return false, false
}

// IsZero reports whether c is the zero Country.
func (c Country) IsZero() bool { return c.Region == "" }

// Equal compares two countries by identity (region and calling code).
func (c Country) Equal(other Country) bool {
	return c.Region == other.Region && c.CallingCode == other.CallingCode
}

// LogValue implements [slog.LogValuer].
func (c Country) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("region", c.Region),
		slog.Int("calling_code", c.CallingCode),
	)
}

// All returns a copy of the full catalog in its canonical order.
func All() []Country {
	return slices.Clone(catalog)
}

// ByRegion returns the first catalog entry with the given ISO2 region code.
func ByRegion(iso2 string) (Country, bool) {
	for _, c := range catalog {
		if c.Region == iso2 {
			return c, true
		}
	}
	return Country{}, false
}

// ByCallingCode returns all catalog entries sharing the given calling code,
// in catalog order.
func ByCallingCode(code int) []Country {
	var cs []Country
	for _, c := range catalog {
		if c.CallingCode == code {
			cs = append(cs, c)
		}
	}
	return cs
}
