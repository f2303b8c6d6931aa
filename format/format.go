// Package format converts between raw "+"-prefixed digit strings and the
// text shown to the user. Country-specific grouping comes entirely from the
// phonenumbers as-you-type formatter; this package decides what to feed it
// and which prefixes to show or hide.
package format

import (
	"strings"

	"github.com/nyaruka/phonenumbers/v2"

	"github.com/telefield/telefield/plan"
)

// Format renders raw through the as-you-type formatter seeded for the
// country's region. It returns "" when raw is empty or no country is known.
// When countryCodeVisible is false the "+<calling code>" prefix and the
// whitespace around it are stripped from the result.
func Format(raw string, c *plan.Country, countryCodeVisible bool) string {
	if raw == "" || c == nil {
		return ""
	}

	f := phonenumbers.GetAsYouTypeFormatter(c.Region)
	var out string
	for _, r := range raw {
		out = f.InputDigit(r)
	}

	if !countryCodeVisible {
		out = strings.TrimSpace(strings.TrimPrefix(out, c.CallingCodePrefix()))
	}
	return out
}

// Commit canonicalizes the displayed text when editing ends. Values that do
// not parse come back unchanged; numbers that parse but are not yet valid
// are rendered with [Format]; valid numbers take their terminal form: the
// international format when the country code is visible, the national
// format when it is not. Either form survives a later [Unformat] intact.
func Commit(raw string, c *plan.Country, countryCodeVisible bool) string {
	if raw == "" || c == nil {
		return raw
	}

	num, err := phonenumbers.Parse(raw, c.Region)
	if err != nil {
		return raw
	}
	if !phonenumbers.IsValidNumber(num) {
		return Format(raw, c, countryCodeVisible)
	}

	if countryCodeVisible {
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// Unformat reconstitutes the canonical raw value from displayed text. Only
// digit characters are considered. When the country code was visible the
// digits already carry it and only the "+" is restored; when it was hidden
// the country's calling code is prepended, after dropping the national
// trunk digit for regions that use one (see [TrunkPrefix]).
func Unformat(displayed string, c *plan.Country, countryCodeVisible bool) string {
	digits := Digits(displayed)
	if digits == "" {
		return ""
	}
	if c == nil || countryCodeVisible {
		return "+" + digits
	}

	if trunk, ok := TrunkPrefix(c.Region); ok {
		digits = strings.TrimPrefix(digits, trunk)
	}
	return c.CallingCodePrefix() + digits
}

// Digits returns only the decimal digit characters of s.
func Digits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// trunkPrefixes lists regions whose national dial strings carry a leading
// trunk digit that is NOT part of the international number and must be
// dropped when reconstituting a raw value. Regions absent from the table
// keep every digit; Italy is deliberately absent because its leading zero
// belongs to the number itself.
var trunkPrefixes = map[string]string{
	"AT": "0",
	"AU": "0",
	"BE": "0",
	"CH": "0",
	"DE": "0",
	"FR": "0",
	"GB": "0",
	"IE": "0",
	"NL": "0",
	"NZ": "0",
	"SE": "0",
	"ZA": "0",
}

// TrunkPrefix returns the national trunk digit dropped for the region when
// rebuilding a raw value from national-format text, if the region has one.
func TrunkPrefix(region string) (string, bool) {
	p, ok := trunkPrefixes[region]
	return p, ok
}
