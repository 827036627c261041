package vt510term

// Pos is a 1-indexed cursor coordinate (spec.md §3 "Cursor (Pos)"). Row 1 is
// the top of the visible viewport.
type Pos struct {
	Row int
	Col int
}

// savedState is the DECSC/DECRC slot: cursor position plus the attribute
// state in effect at save time (spec.md §3 "saved-cursor and saved-attrs
// slot for DECSC/DECRC"; original_source/terminal.py
// `self.saved_cursor`/`self.saved_tas`).
type savedState struct {
	pos   Pos
	attrs Attrs
}
