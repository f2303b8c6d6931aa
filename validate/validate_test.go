package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nyaruka/phonenumbers/v2"

	"github.com/telefield/telefield/validate"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want validate.ErrorKind
	}{
		{"nil", nil, validate.KindNone},
		{"invalid country code", phonenumbers.ErrInvalidCountryCode, validate.KindInvalidCountryCode},
		{"not a number", phonenumbers.ErrNotANumber, validate.KindNotANumber},
		{"too short after idd", phonenumbers.ErrTooShortAfterIDD, validate.KindTooShort},
		{"too short nsn", phonenumbers.ErrTooShortNSN, validate.KindTooShort},
		{"too long", phonenumbers.ErrNumTooLong, validate.KindTooLong},
		{"wrapped sentinel", fmt.Errorf("parse: %w", phonenumbers.ErrNotANumber), validate.KindNotANumber},
		{"unrelated", errors.New("boom"), validate.KindOther},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := validate.KindOf(c.err); got != c.want {
				t.Errorf("validate.KindOf(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestErrorKind_Message(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind validate.ErrorKind
		want string
	}{
		{validate.KindNone, ""},
		{validate.KindInvalidCountryCode, "Invalid country code"},
		{validate.KindNotANumber, "Invalid: not a number"},
		{validate.KindTooShort, "Invalid: too short / not enough digits"},
		{validate.KindTooLong, "Invalid: too long / too many digits"},
		{validate.KindOther, "Invalid phone number"},
	}

	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			t.Parallel()

			if got := c.kind.Message(); got != c.want {
				t.Errorf("kind.Message() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, text, region string) *phonenumbers.PhoneNumber {
		t.Helper()
		num, err := phonenumbers.Parse(text, region)
		if err != nil {
			t.Fatalf("phonenumbers.Parse(%q, %q) error = %v", text, region, err)
		}
		return num
	}

	typePtr := func(pt phonenumbers.PhoneNumberType) *phonenumbers.PhoneNumberType { return &pt }

	// Swiss metadata distinguishes mobile (07x) from fixed lines, which
	// keeps the type expectations unambiguous.
	mobile := parse(t, "+41791234567", "CH")
	short := parse(t, "+1202", "US")

	cases := []struct {
		name        string
		num         *phonenumbers.PhoneNumber
		expected    *phonenumbers.PhoneNumberType
		includeType bool
		want        bool
	}{
		{"nil number", nil, nil, false, false},
		{"valid no expectation", mobile, nil, true, true},
		{"invalid number", short, nil, true, false},
		{"matching type", mobile, typePtr(phonenumbers.MOBILE), true, true},
		{"wrong type enforced", mobile, typePtr(phonenumbers.FIXED_LINE), true, false},
		{"wrong type ignored", mobile, typePtr(phonenumbers.FIXED_LINE), false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := validate.Check(c.num, c.expected, c.includeType); got != c.want {
				t.Errorf("validate.Check() = %v, want %v", got, c.want)
			}
		})
	}
}
