// Package telefield implements the resolution-and-formatting engine behind
// a phone-number input field: it infers the country a digit sequence
// belongs to, keeps a single authoritative value while deriving the E.164,
// national and international renderings, and classifies parse and
// validation outcomes.
//
// The engine is deliberately host-agnostic. Rendering, dropdowns and
// keyboard wiring belong to the embedding GUI; the digit-grouping rules
// and number validity come from the phonenumbers metadata. What lives here
// is the state machine in between: every external stimulus (a programmatic
// value, a keystroke, a country pick, a configuration change) runs exactly
// one guarded update cycle, and observers only ever see fully settled
// snapshots.
package telefield
