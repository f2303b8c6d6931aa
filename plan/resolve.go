package plan

import (
	"strings"

	"github.com/nyaruka/phonenumbers/v2"
)

// Resolve infers the best-matching country for a digit sequence.
//
// Each country in available is scored against digits (any leading "+" is
// stripped first): 2 when the digits start with the calling code followed
// by one of the country's area codes, 1 when the country has no area codes
// and the digits start with its calling code, 0 otherwise. Only the
// candidates with the maximum non-zero score survive.
//
// Ties are broken by the first surviving candidate found in preferred, in
// preferred's order. When none of the tied candidates is preferred, the
// LAST candidate in available's order wins. Last-wins is a deliberate,
// documented policy rather than an accident of iteration order; it is
// pinned by tests.
func Resolve(digits string, available, preferred []Country) (Country, bool) {
	digits = strings.TrimPrefix(digits, "+")
	if digits == "" {
		return Country{}, false
	}

	best := 0
	var tied []Country
	for _, c := range available {
		areaMatch, ok := c.matchPrefix(digits)
		if !ok {
			continue
		}
		score := 1
		if areaMatch {
			score = 2
		}
		switch {
		case score > best:
			best = score
			tied = tied[:0]
			tied = append(tied, c)
		case score == best:
			tied = append(tied, c)
		}
	}
	if len(tied) == 0 {
		return Country{}, false
	}

	for _, p := range preferred {
		for _, c := range tied {
			if c.Equal(p) {
				return c, true
			}
		}
	}
	return tied[len(tied)-1], true
}

// ResolveNumber maps a successfully parsed number back to a catalog entry
// within scope. The national-destination-code prefix of the national
// significant number is matched against the area codes of countries sharing
// the number's calling code; failing that, the country with that calling
// code and no area codes wins; failing that, the first country with the
// calling code.
func ResolveNumber(num *phonenumbers.PhoneNumber, scope []Country) (Country, bool) {
	if num == nil {
		return Country{}, false
	}

	code := int(num.GetCountryCode())
	nsn := phonenumbers.GetNationalSignificantNumber(num)

	if geoLen := phonenumbers.GetLengthOfNationalDestinationCode(num); geoLen > 0 && len(nsn) >= geoLen {
		ndc := nsn[:geoLen]
		for _, c := range scope {
			if c.CallingCode == code && c.HasAreaCode(ndc) {
				return c, true
			}
		}
	}

	for _, c := range scope {
		if c.CallingCode == code && len(c.AreaCodes) == 0 {
			return c, true
		}
	}
	for _, c := range scope {
		if c.CallingCode == code {
			return c, true
		}
	}
	return Country{}, false
}
