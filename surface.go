package telefield

//go:generate mockgen -package surfacemock -destination internal/testutil/surfacemock/surface.go github.com/telefield/telefield Surface

// Surface is the seam to the host's text widget. The engine writes the
// displayed text and the caret through it; it never reads the widget
// except via [Field.ApplyTextEdit], which the host calls on every edit.
//
// After any programmatic replacement the caret is placed at the end of the
// new text. That is a deliberate simplification, not a relative-position
// preservation policy.
type Surface interface {
	// Text returns the currently displayed text.
	Text() string
	// SetText replaces the displayed text.
	SetText(text string)
	// SetCaret moves the caret to the given rune offset.
	SetCaret(offset int)
}

// TextEdit carries one host edit into the engine: the new displayed text
// and the caret/anchor offsets after the edit. It is transient; the engine
// discards it once the update cycle settles.
type TextEdit struct {
	Text   string
	Caret  int
	Anchor int
}
