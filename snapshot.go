package telefield

import (
	"log/slog"

	"github.com/nyaruka/phonenumbers/v2"

	"github.com/telefield/telefield/plan"
	"github.com/telefield/telefield/validate"
)

// Snapshot is the authoritative state of a [Field] after a settled update
// cycle. The zero value is the empty state. The derived fields (Number,
// E164, National, International, Valid, ErrorKind) are always recomputed
// together; no snapshot ever carries a partially derived mix.
type Snapshot struct {
	// Raw is the authoritative value: a "+"-prefixed digit string, or the
	// verbatim text when it never parsed, or "" when the field is empty.
	Raw string
	// Country is the resolved country, nil when resolution failed or the
	// field is empty.
	Country *plan.Country
	// Number is the parsed number, nil unless parsing succeeded.
	Number *phonenumbers.PhoneNumber
	// E164, National and International are the derived renderings, all ""
	// unless parsing succeeded.
	E164          string
	National      string
	International string
	// Valid reports whether the number passed the validity check,
	// including the optional type check.
	Valid bool
	// ErrorKind classifies the parse failure, KindNone on success.
	ErrorKind validate.ErrorKind
}

// Empty reports whether the snapshot carries no value.
func (s Snapshot) Empty() bool { return s.Raw == "" }

func (s Snapshot) equal(other Snapshot) bool {
	if s.Raw != other.Raw || s.E164 != other.E164 ||
		s.National != other.National || s.International != other.International ||
		s.Valid != other.Valid || s.ErrorKind != other.ErrorKind {
		return false
	}
	switch {
	case s.Country == nil && other.Country == nil:
		return true
	case s.Country == nil || other.Country == nil:
		return false
	default:
		return s.Country.Equal(*other.Country)
	}
}

// LogValue implements [slog.LogValuer].
func (s Snapshot) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("raw", s.Raw),
		slog.Bool("valid", s.Valid),
	}
	if s.Country != nil {
		attrs = append(attrs, slog.Any("country", *s.Country))
	}
	if s.E164 != "" {
		attrs = append(attrs, slog.String("e164", s.E164))
	}
	if s.ErrorKind != validate.KindNone {
		attrs = append(attrs, slog.Any("error_kind", s.ErrorKind))
	}
	return slog.GroupValue(attrs...)
}
