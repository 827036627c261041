package vt510term

// Cell is a single display position: one character plus the attribute state
// in effect when it was written (spec.md §3). Attrs is stored by value — a
// deep copy at write time — so later SGR mutation never retroactively
// restyles past text (spec.md §9 "back-references").
type Cell struct {
	Ch    rune
	Attrs Attrs
}

// blankCell returns a space cell carrying the given attributes.
func blankCell(attrs Attrs) Cell {
	return Cell{Ch: ' ', Attrs: attrs}
}

// Line is a fixed-column-count row of cells plus the bookkeeping spec.md §3
// requires for delta rendering: a monotonically increasing id, a changed
// flag, and the cursor coordinate (if any) that lands on this line this
// update and the previous one.
type Line struct {
	Cells     []Cell
	ID        int
	Changed   bool
	Cursor    *Pos
	OldCursor *Pos
	Wrapped   bool
}

// newLine allocates a blank line of cols cells filled with attrs, at id.
func newLine(id, cols int, attrs Attrs) *Line {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = blankCell(attrs)
	}
	return &Line{Cells: cells, ID: id}
}

// reset prepares the line for a new update: clears Changed, snapshots the
// cursor position into OldCursor, and clears the per-cell CursorHere marker
// (spec.md §4.4.5 "Before applying an update the engine resets the changed
// flags and snapshots old_cursor").
func (l *Line) reset() {
	l.Changed = false
	l.OldCursor = l.Cursor
	l.Cursor = nil
	for i := range l.Cells {
		l.Cells[i].Attrs.CursorHere = false
	}
}

// setCursor marks pos as the cursor's position within this line, flips the
// CursorHere marker on the addressed cell, and marks the line changed
// (spec.md §4.4.5; grounded on original_source/terminal.py
// `TerminalLine.set_cursor`).
func (l *Line) setCursor(pos Pos) {
	l.Cursor = &pos
	if pos.Col-1 >= 0 && pos.Col-1 < len(l.Cells) {
		l.Cells[pos.Col-1].Attrs.CursorHere = true
	}
	l.Changed = true
}

// hasChanged reports whether the line changed since the previous update,
// additionally counting a moved-away cursor as a change (spec.md §4.4.5
// "moving the cursor onto or off a line forces that line to be changed").
func (l *Line) hasChanged() bool {
	if !posEqual(l.OldCursor, l.Cursor) {
		l.Changed = true
	}
	return l.Changed
}

func posEqual(a, b *Pos) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// clear resets every cell in the line to a blank cell carrying attrs.
func (l *Line) clear(attrs Attrs) {
	for i := range l.Cells {
		l.Cells[i] = blankCell(attrs)
	}
	l.Wrapped = false
	l.Changed = true
}
