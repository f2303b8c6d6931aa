package telefield

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/nyaruka/phonenumbers/v2"
	"github.com/qmuntal/stateless"

	"github.com/telefield/telefield/format"
	"github.com/telefield/telefield/internal/log"
	"github.com/telefield/telefield/internal/types"
	"github.com/telefield/telefield/plan"
	"github.com/telefield/telefield/validate"
)

// FieldState is the lifecycle state of a [Field].
type FieldState string

const (
	// StateEmpty means the field carries no value.
	StateEmpty FieldState = "empty"
	// StateInvalid means the field carries a value that does not (yet)
	// validate: a partial number, a parse failure, or a type mismatch.
	StateInvalid FieldState = "invalid"
	// StateValid means the field carries a valid number.
	StateValid FieldState = "valid"
)

const (
	trgReset   = "reset"
	trgInvalid = "settle_invalid"
	trgValid   = "settle_valid"
)

// Field is the engine's coordinating root: it owns the authoritative
// [Snapshot] and drives resolution, formatting and validation in a fixed
// order on every change.
//
// All entry points run exactly one update cycle each, serialized by a
// re-entrancy guard: any nested call made synchronously from inside a
// cycle (an observer writing the value back, the host's edit handler
// reacting to a programmatic SetText) is a no-op. Work that must run
// after the in-flight cycle, such as the live re-format of the displayed
// text, goes through a post-cycle task queue drained once the cycle
// returns.
//
// Field is not safe for concurrent use; it is built for a single-threaded
// UI event loop.
type Field struct {
	log *slog.Logger
	fsm *stateless.StateMachine

	available []plan.Country
	preferred []plan.Country

	defaultRegion             string
	expectedType              *phonenumbers.PhoneNumberType
	countryCodeVisible        bool
	liveFormatting            bool
	validityIncludesTypeCheck bool
	showExampleNumbers        bool
	missingCountryPrompt      string

	surface Surface

	snap      Snapshot
	published Snapshot

	updating bool
	deferred []func()

	onChange types.CallbackRegistry[func(Snapshot)]
}

// NewField creates a field with the given options. A nil opts is valid and
// yields a field over the full catalog with default settings.
func NewField(opts *FieldOptions) (*Field, error) {
	available := opts.available()

	region := opts.defaultRegion()
	if _, ok := plan.ByRegion(region); !ok {
		return nil, errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("%w: %q", ErrUnknownRegion, region)))
	}

	f := &Field{
		log:                       opts.log(),
		available:                 available,
		preferred:                 opts.preferred(available),
		defaultRegion:             region,
		expectedType:              opts.expectedType(),
		countryCodeVisible:        opts.countryCodeVisible(),
		liveFormatting:            opts.liveFormatting(),
		validityIncludesTypeCheck: opts.validityIncludesTypeCheck(),
		showExampleNumbers:        opts.showExampleNumbers(),
		missingCountryPrompt:      opts.missingCountryPrompt(),
		surface:                   opts.surface(),
	}
	f.initFSM()
	return f, nil
}

func (f *Field) initFSM() {
	fsm := stateless.NewStateMachine(StateEmpty)

	fsm.Configure(StateEmpty).
		Ignore(trgReset).
		Permit(trgInvalid, StateInvalid).
		Permit(trgValid, StateValid)

	fsm.Configure(StateInvalid).
		PermitReentry(trgInvalid).
		Permit(trgReset, StateEmpty).
		Permit(trgValid, StateValid)

	fsm.Configure(StateValid).
		PermitReentry(trgValid).
		Permit(trgReset, StateEmpty).
		Permit(trgInvalid, StateInvalid)

	fsm.OnTransitioned(func(ctx context.Context, tr stateless.Transition) {
		f.log.LogAttrs(ctx, slog.LevelDebug, "field state changed",
			slog.Any("from", tr.Source),
			slog.Any("to", tr.Destination),
			slog.Any("snapshot", f.snap),
		)
	})

	f.fsm = fsm
}

// State returns the field's lifecycle state.
func (f *Field) State() FieldState {
	return f.fsm.MustState().(FieldState) //nolint:forcetypeassert
}

// Snapshot returns the last settled snapshot.
func (f *Field) Snapshot() Snapshot { return f.snap }

// Value returns the authoritative raw value, "" when the field is empty.
func (f *Field) Value() string { return f.snap.Raw }

// SelectedCountry returns the resolved country, nil when none.
func (f *Field) SelectedCountry() *plan.Country { return f.snap.Country }

// Number returns the parsed number, nil unless parsing succeeded.
func (f *Field) Number() *phonenumbers.PhoneNumber { return f.snap.Number }

// E164 returns the E.164 rendering, "" unless parsing succeeded.
func (f *Field) E164() string { return f.snap.E164 }

// National returns the national rendering, "" unless parsing succeeded.
func (f *Field) National() string { return f.snap.National }

// International returns the international rendering, "" unless parsing
// succeeded.
func (f *Field) International() string { return f.snap.International }

// Valid reports whether the field carries a valid number.
func (f *Field) Valid() bool { return f.snap.Valid }

// ErrorKind returns the parse error classification, KindNone when the
// value parsed or the field is empty.
func (f *Field) ErrorKind() validate.ErrorKind { return f.snap.ErrorKind }

// OnChange registers a callback invoked with every newly settled snapshot,
// in registration order, and returns a cancel function. A nil callback is
// a programming error and panics.
func (f *Field) OnChange(cb func(Snapshot)) (cancel func()) {
	if cb == nil {
		panic(NewInvalidArgumentError("nil change callback"))
	}
	return f.onChange.Add(cb)
}

// AttachSurface connects the host text widget. A nil surface detaches.
func (f *Field) AttachSurface(s Surface) { f.surface = s }

// SetValue sets the authoritative value from the application. The value is
// ideally a complete E.164 number ("+12024561111"); values without a "+"
// are parsed against the default region. "" clears the field.
func (f *Field) SetValue(raw string) {
	f.runCycle(func() {
		f.applyValue(raw)
		f.scheduleRefresh()
	})
}

// Clear empties the field: raw value, country and every derived field.
func (f *Field) Clear() { f.SetValue("") }

// SetSelectedCountry makes the user's country pick the new value: the raw
// value is rewritten to the country's dial prefix (calling code plus
// default area code) and re-derived as if it had been typed. A nil country
// clears the field. Picking a country outside the available set is
// rejected.
func (f *Field) SetSelectedCountry(c *plan.Country) error {
	if c != nil && !containsCountry(f.available, *c) {
		return errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("%w: %s", ErrCountryNotAvailable, c.Region)))
	}
	f.runCycle(func() {
		if c == nil {
			f.snap = Snapshot{}
			f.scheduleRefresh()
			return
		}
		country := *c
		f.snap.Raw = country.DialPrefix()
		f.snap.Country = &country
		f.derive()
		f.scheduleRefresh()
	})
	return nil
}

// ApplyTextEdit feeds one host edit into the engine. The displayed text is
// reduced to a canonical raw value and processed as a value change; in
// live mode the canonical re-format of the widget text is deferred to the
// end of the cycle so the in-flight edit is never corrupted.
func (f *Field) ApplyTextEdit(edit TextEdit) {
	f.runCycle(func() {
		raw := format.Unformat(edit.Text, f.snap.Country, f.countryCodeVisible)
		f.applyValue(raw)
		if f.liveFormatting {
			f.deferTask(f.refreshSurface)
		}
	})
}

// CommitEdit canonicalizes the displayed text once editing ends (focus
// loss or an explicit commit signal from the host).
func (f *Field) CommitEdit() {
	f.runCycle(func() {
		if f.surface == nil {
			return
		}
		text := format.Commit(f.snap.Raw, f.snap.Country, f.countryCodeVisible)
		f.replaceText(text)
	})
}

// SetAvailableCountries replaces the ordered set of selectable countries,
// ignoring duplicates. Preferred countries outside the new set are
// dropped. If the change removes the currently selected country the field
// fully resets.
func (f *Field) SetAvailableCountries(cs ...plan.Country) {
	f.runCycle(func() {
		f.available = dedupeCountries(cs)
		f.preferred = filterCountries(f.preferred, f.available)
		f.log.LogAttrs(context.Background(), slog.LevelDebug, "available countries changed",
			slog.Any("available", log.FmtValue(f.available, false)),
		)
		if f.snap.Country != nil && !containsCountry(f.available, *f.snap.Country) {
			f.snap = Snapshot{}
			f.scheduleRefresh()
		}
	})
}

// SetPreferredCountries replaces the resolver's tie-break priority list.
// Entries outside the available set are dropped.
func (f *Field) SetPreferredCountries(cs ...plan.Country) {
	f.runCycle(func() {
		f.preferred = filterCountries(dedupeCountries(cs), f.available)
	})
}

// AvailableCountries returns the ordered available set.
func (f *Field) AvailableCountries() []plan.Country {
	return append([]plan.Country(nil), f.available...)
}

// PreferredCountries returns the ordered preferred list.
func (f *Field) PreferredCountries() []plan.Country {
	return append([]plan.Country(nil), f.preferred...)
}

// SetExpectedType sets or clears the expected number type and revalidates.
func (f *Field) SetExpectedType(pt *phonenumbers.PhoneNumberType) {
	f.runCycle(func() {
		f.expectedType = pt
		f.revalidate()
	})
}

// SetValidityIncludesTypeCheck toggles the type requirement and
// revalidates.
func (f *Field) SetValidityIncludesTypeCheck(v bool) {
	f.runCycle(func() {
		f.validityIncludesTypeCheck = v
		f.revalidate()
	})
}

// SetCountryCodeVisible toggles the "+<calling code>" prefix in the
// displayed text and re-renders it.
func (f *Field) SetCountryCodeVisible(v bool) {
	f.runCycle(func() {
		f.countryCodeVisible = v
		f.scheduleRefresh()
	})
}

// SetLiveFormatting toggles between live and commit-time formatting.
func (f *Field) SetLiveFormatting(v bool) {
	f.runCycle(func() { f.liveFormatting = v })
}

// SetDefaultRegion changes the parse fallback region for values without a
// "+" prefix.
func (f *Field) SetDefaultRegion(iso2 string) error {
	if _, ok := plan.ByRegion(iso2); !ok {
		return errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("%w: %q", ErrUnknownRegion, iso2)))
	}
	f.runCycle(func() { f.defaultRegion = iso2 })
	return nil
}

// PromptText returns the text a host should show in an empty widget: the
// missing-country prompt while no country is resolved, otherwise an
// example number for the selected country (honoring the expected type)
// when example numbers are enabled.
func (f *Field) PromptText() string {
	if f.snap.Country == nil {
		return f.missingCountryPrompt
	}
	if !f.showExampleNumbers {
		return ""
	}

	var ex *phonenumbers.PhoneNumber
	if f.expectedType != nil {
		ex = phonenumbers.GetExampleNumberForTypeInRegion(f.snap.Country.Region, *f.expectedType)
	} else {
		ex = phonenumbers.GetExampleNumber(f.snap.Country.Region)
	}
	if ex == nil {
		return ""
	}
	return phonenumbers.Format(ex, phonenumbers.NATIONAL)
}

// runCycle executes fn as one update cycle under the re-entrancy guard,
// settles the FSM, publishes the snapshot when it changed, and drains the
// post-cycle queue. Nested calls are no-ops.
func (f *Field) runCycle(fn func()) {
	if f.updating {
		return
	}
	f.updating = true
	fn()
	f.settle()
	f.updating = false

	for len(f.deferred) > 0 {
		queue := f.deferred
		f.deferred = nil
		for _, task := range queue {
			task()
		}
	}
}

func (f *Field) deferTask(task func()) {
	f.deferred = append(f.deferred, task)
}

func (f *Field) settle() {
	var trg string
	switch {
	case f.snap.Empty():
		trg = trgReset
	case f.snap.Valid:
		trg = trgValid
	default:
		trg = trgInvalid
	}
	if err := f.fsm.Fire(trg); err != nil {
		panic(fmt.Errorf("fire %q in state %q: %w", trg, f.State(), err))
	}

	if f.snap.equal(f.published) {
		return
	}
	f.published = f.snap
	for cb := range f.onChange.All() {
		cb(f.snap)
	}
}

// applyValue is the value-change path of the update cycle: resolve the
// country from the digit prefix, then derive every dependent field.
func (f *Field) applyValue(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		f.snap = Snapshot{}
		return
	}

	f.snap.Country = nil
	if strings.HasPrefix(raw, "+") {
		if c, ok := plan.Resolve(raw, f.available, f.preferred); ok {
			f.snap.Country = &c
		}
	}
	f.snap.Raw = raw
	f.derive()
}

// derive recomputes the parsed number, the three renderings, the validity
// flag and the error kind, all together. On success the raw value is
// canonicalized to E.164, and a country still unresolved from the prefix
// is recovered from the parsed number.
func (f *Field) derive() {
	s := &f.snap
	s.Number = nil
	s.E164, s.National, s.International = "", "", ""
	s.Valid = false
	s.ErrorKind = validate.KindNone

	region := f.defaultRegion
	if s.Country != nil {
		region = s.Country.Region
	}

	num, err := phonenumbers.Parse(s.Raw, region)
	if err != nil {
		s.ErrorKind = validate.KindOf(errtrace.Wrap(err))
		f.log.LogAttrs(context.Background(), slog.LevelDebug, "parse failed",
			slog.String("raw", s.Raw),
			slog.String("region", region),
			slog.Any("error_kind", s.ErrorKind),
		)
		return
	}

	s.Number = num
	s.E164 = phonenumbers.Format(num, phonenumbers.E164)
	s.National = phonenumbers.Format(num, phonenumbers.NATIONAL)
	s.International = phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	s.Raw = s.E164

	if s.Country == nil {
		if c, ok := plan.ResolveNumber(num, f.available); ok {
			s.Country = &c
		}
	}
	s.Valid = validate.Check(num, f.expectedType, f.validityIncludesTypeCheck)
}

func (f *Field) revalidate() {
	if f.snap.Number == nil {
		return
	}
	f.snap.Valid = validate.Check(f.snap.Number, f.expectedType, f.validityIncludesTypeCheck)
}

// scheduleRefresh queues a re-render of the displayed text for after the
// current cycle, so an in-flight widget edit is never rewritten from
// inside its own handler.
func (f *Field) scheduleRefresh() {
	if f.surface == nil {
		return
	}
	f.deferTask(f.refreshSurface)
}

// refreshSurface rewrites the widget text from the authoritative value.
// Runs as its own guarded cycle so the host's reaction to SetText cannot
// start a fresh cascade. With no resolved country there is nothing to
// format against, so the text falls back to the unprefixed digit string
// rather than wiping what the user typed.
func (f *Field) refreshSurface() {
	f.runCycle(func() {
		if f.surface == nil {
			return
		}
		text := format.Format(f.snap.Raw, f.snap.Country, f.countryCodeVisible)
		if text == "" {
			text = strings.TrimPrefix(f.snap.Raw, "+")
		}
		f.replaceText(text)
	})
}

func (f *Field) replaceText(text string) {
	f.surface.SetText(text)
	f.surface.SetCaret(len([]rune(text)))
}

func containsCountry(cs []plan.Country, c plan.Country) bool {
	for _, x := range cs {
		if x.Equal(c) {
			return true
		}
	}
	return false
}
