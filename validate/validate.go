// Package validate classifies parse outcomes and decides number validity.
// The numbering rules themselves come from the phonenumbers metadata; this
// package only maps its verdicts onto the engine's taxonomy.
package validate

import (
	"errors"
	"log/slog"

	"github.com/nyaruka/phonenumbers/v2"
)

// ErrorKind classifies why a raw value failed to parse as a phone number.
type ErrorKind int

const (
	// KindNone means no parse error occurred.
	KindNone ErrorKind = iota
	// KindInvalidCountryCode means the digits start with an unassigned
	// country calling code.
	KindInvalidCountryCode
	// KindNotANumber means the text is not a phone number at all.
	KindNotANumber
	// KindTooShort means too few digits for any number of the region.
	KindTooShort
	// KindTooLong means too many digits for any number of the region.
	KindTooLong
	// KindOther covers parse failures outside the standard taxonomy.
	KindOther
)

// KindOf maps a parse error returned by the numbering library onto the
// engine's taxonomy. A nil error maps to [KindNone].
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, phonenumbers.ErrInvalidCountryCode):
		return KindInvalidCountryCode
	case errors.Is(err, phonenumbers.ErrNotANumber):
		return KindNotANumber
	case errors.Is(err, phonenumbers.ErrTooShortAfterIDD),
		errors.Is(err, phonenumbers.ErrTooShortNSN):
		return KindTooShort
	case errors.Is(err, phonenumbers.ErrNumTooLong):
		return KindTooLong
	default:
		return KindOther
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidCountryCode:
		return "invalid_country_code"
	case KindNotANumber:
		return "not_a_number"
	case KindTooShort:
		return "too_short"
	case KindTooLong:
		return "too_long"
	default:
		return "other"
	}
}

// Message returns a human-readable description of the error kind, or ""
// for [KindNone]. Hosts typically replace this with localized text.
func (k ErrorKind) Message() string {
	switch k {
	case KindInvalidCountryCode:
		return "Invalid country code"
	case KindNotANumber:
		return "Invalid: not a number"
	case KindTooShort:
		return "Invalid: too short / not enough digits"
	case KindTooLong:
		return "Invalid: too long / too many digits"
	case KindOther:
		return "Invalid phone number"
	default:
		return ""
	}
}

// LogValue implements [slog.LogValuer].
func (k ErrorKind) LogValue() slog.Value { return slog.StringValue(k.String()) }

// Check reports whether num is a valid number, optionally requiring it
// to be of the expected type. A nil expected type, or includeType false,
// reduces the check to plain validity. A nil number is never valid.
func Check(num *phonenumbers.PhoneNumber, expected *phonenumbers.PhoneNumberType, includeType bool) bool {
	if num == nil || !phonenumbers.IsValidNumber(num) {
		return false
	}
	if expected == nil || !includeType {
		return true
	}
	return phonenumbers.GetNumberType(num) == *expected
}
