package vt510term

// Default terminal dimensions (spec.md §6).
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Terminal is the grid + cursor + attribute state machine described in
// spec.md §4.4. It is single-threaded and synchronous (spec.md §5): input
// is applied only inside Update (Reset, Resize and SetCursorVisible are the
// other mutators), and the host must serialize calls to it externally if
// driven from multiple goroutines.
//
// Grounded on the teacher's terminal.go (functional-options construction,
// a Terminal type owning everything it needs) generalized from a full
// VT220 emulator down to the narrower VT510-subset state machine spec.md
// describes, and on original_source/terminal.py's TerminalState.
type Terminal struct {
	rows int
	cols int

	palette *Palette

	lines         []*Line
	nextLineID    int
	scrollback    ScrollbackProvider
	escapeGuardLen int

	cursor        Pos
	cursorVisible bool
	savedPos      *Pos        // position-only save slot for CSI s/u
	savedState    *savedState // DECSC/DECRC full state slot for ESC 7/8

	attrs Attrs

	tokenizer *Tokenizer
	bell      BellProvider

	pendingResponses   [][]byte
	pendingUnsupported []string
}

// Option configures a Terminal during construction (spec.md §6 "Engine API").
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 fall back to the
// defaults (24x80).
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		if rows > 0 {
			t.rows = rows
		}
		if cols > 0 {
			t.cols = cols
		}
	}
}

// WithPalette sets the color palette (spec.md §4.1, §6).
func WithPalette(p *Palette) Option {
	return func(t *Terminal) {
		if p != nil {
			t.palette = p
		}
	}
}

// WithPaletteName sets the palette by its registry name (spec.md §6
// "palette (one of the named palettes)"). Unknown names resolve to
// PaletteDefault.
func WithPaletteName(name string) Option {
	return func(t *Terminal) {
		t.palette = LookupPalette(name)
	}
}

// WithMaxLines bounds total retained scrollback lines. If WithScrollback
// ran first, this adjusts that provider's cap; otherwise it creates the
// default MemoryScrollback with this cap (spec.md §6 "max_lines").
func WithMaxLines(n int) Option {
	return func(t *Terminal) {
		if t.scrollback == nil {
			t.scrollback = NewMemoryScrollback(n)
		} else {
			t.scrollback.SetMaxLines(n)
		}
	}
}

// WithScrollback replaces the scrollback storage implementation.
func WithScrollback(p ScrollbackProvider) Option {
	return func(t *Terminal) {
		t.scrollback = p
	}
}

// WithEscapeGuardLen sets the tokenizer's resync threshold for unterminated
// escape sequences (spec.md §6 "escape_guard_len").
func WithEscapeGuardLen(n int) Option {
	return func(t *Terminal) {
		if n > 0 {
			t.escapeGuardLen = n
		}
	}
}

// WithBell sets the handler for BEL events. Defaults to a no-op.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) {
		if p != nil {
			t.bell = p
		}
	}
}

// New creates a Terminal with the given options, defaulting to 24x80, the
// Putty palette, an unbounded in-memory scrollback, and a no-op bell
// (spec.md §6 "new(rows, cols, palette)").
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:           DefaultRows,
		cols:           DefaultCols,
		palette:        PaletteDefault,
		bell:           NoopBell{},
		escapeGuardLen: defaultEscapeGuardLen,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.scrollback == nil {
		t.scrollback = NewMemoryScrollback(0)
	}

	t.tokenizer = NewTokenizer(t.escapeGuardLen)
	t.Reset()

	return t
}

// Rows returns the viewport height.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the viewport width.
func (t *Terminal) Cols() int { return t.cols }

// Cursor returns the current cursor position (1-indexed, spec.md §3).
func (t *Terminal) Cursor() Pos { return t.cursor }

// CursorVisible reports whether the cursor is currently visible.
func (t *Terminal) CursorVisible() bool { return t.cursorVisible }

// SetCursorVisible sets cursor visibility directly, bypassing CSI ?25h/l
// (spec.md §6 "set_cursor_visible(bool)").
func (t *Terminal) SetCursorVisible(v bool) { t.cursorVisible = v }

// Palette returns the active palette.
func (t *Terminal) Palette() *Palette { return t.palette }

// Line returns the viewport line at the given 1-indexed row, or nil if out
// of range.
func (t *Terminal) Line(row int) *Line {
	if row < 1 || row > len(t.lines) {
		return nil
	}
	return t.lines[row-1]
}

// Reset clears the grid, attributes, tokenizer, and scrollback
// (spec.md §6 "reset() - clears grid, attributes, tokenizer, scrollback").
func (t *Terminal) Reset() {
	t.attrs = defaultAttrs(t.palette)
	// A fresh terminal's cursor starts at the bottom row, not the top: the
	// viewport is blank, and output begins at the line that will scroll
	// (spec.md §8 scenario S1: three characters with no newline already
	// land on the bottom row of a fresh 24x80 terminal).
	t.cursor = Pos{Row: t.rows, Col: 1}
	t.savedPos = nil
	t.savedState = nil
	t.cursorVisible = false

	t.nextLineID = 0
	t.lines = make([]*Line, t.rows)
	for i := range t.lines {
		t.lines[i] = t.newLine()
	}

	t.tokenizer.Reset()
	t.scrollback.Clear()
	t.pendingResponses = nil
	t.pendingUnsupported = nil
}

// Resize changes the viewport dimensions. Shrinking rows pushes the topmost
// excess lines into scrollback; growing rows appends blank lines. Columns
// are padded or truncated per line. Invalid dimensions (<= 0) are ignored
// (spec.md §6 "resize(rows, cols) (optional)").
func (t *Terminal) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	if cols != t.cols {
		for _, l := range t.lines {
			resizeLineCols(l, cols, t.attrs)
		}
	}
	t.cols = cols

	switch {
	case rows > len(t.lines):
		for len(t.lines) < rows {
			t.lines = append(t.lines, t.newLine())
		}
	case rows < len(t.lines):
		excess := len(t.lines) - rows
		for i := 0; i < excess; i++ {
			t.scrollback.Push(t.lines[i])
		}
		t.lines = t.lines[excess:]
		t.cursor.Row -= excess
	}
	t.rows = rows

	if t.cursor.Row < 1 {
		t.cursor.Row = 1
	}
	if t.cursor.Row > t.rows {
		t.cursor.Row = t.rows
	}
	if t.cursor.Col > t.cols {
		t.cursor.Col = t.cols
	}
}

func resizeLineCols(l *Line, cols int, attrs Attrs) {
	if len(l.Cells) > cols {
		l.Cells = l.Cells[:cols]
		return
	}
	for len(l.Cells) < cols {
		l.Cells = append(l.Cells, blankCell(attrs))
	}
}

// newLine allocates a blank viewport line with the next monotonic id
// (spec.md §3 "id (monotonically increasing, assigned at creation)").
func (t *Terminal) newLine() *Line {
	l := newLine(t.nextLineID, t.cols, t.attrs)
	t.nextLineID++
	return l
}

// currentLine returns the line addressed by the cursor's row.
func (t *Terminal) currentLine() *Line {
	return t.lines[t.cursor.Row-1]
}

// clampPos clamps row/col into viewport bounds (spec.md §3 cursor invariants).
func (t *Terminal) clampPos(row, col int) (int, int) {
	if row < 1 {
		row = 1
	}
	if row > t.rows {
		row = t.rows
	}
	if col < 1 {
		col = 1
	}
	if col > t.cols {
		col = t.cols
	}
	return row, col
}

// setCursor sets the cursor to an absolute position, clamping to the
// viewport (spec.md §3, §4.4.3 "All positions clamp to viewport").
func (t *Terminal) setCursor(row, col int) {
	t.cursor.Row, t.cursor.Col = t.clampPos(row, col)
}

// moveCursorRel moves the cursor by a relative offset, clamping to the
// viewport.
func (t *Terminal) moveCursorRel(drow, dcol int) {
	t.setCursor(t.cursor.Row+drow, t.cursor.Col+dcol)
}

// advanceRow moves to the next row, scrolling up if already at the bottom
// (spec.md §4.4.2 LF, §4.4.4 Scroll-up). markWrapped records that the line
// being left ended because of column overflow rather than an explicit
// newline (the VT-conformant auto-wrap choice recorded in spec.md §9).
func (t *Terminal) advanceRow(markWrapped bool) {
	if markWrapped {
		t.currentLine().Wrapped = true
	}
	if t.cursor.Row >= t.rows {
		t.scrollUp()
	} else {
		t.cursor.Row++
	}
}

// scrollUp moves the topmost visible line into scrollback, shifts all
// viewport rows up by one, and allocates a new blank bottom line with a
// fresh monotonically increasing id (spec.md §4.4.4).
func (t *Terminal) scrollUp() {
	t.scrollback.Push(t.lines[0])
	t.lines = append(t.lines[1:], t.newLine())
}

// writeText writes a maximal printable run into the grid at the cursor,
// advancing the column (spec.md §4.4.1). Auto-wrap is VT-conformant: once
// the column runs past cols, the next character advances to a new row
// before it is placed, rather than the Python source's ever-growing line
// (the choice spec.md §9 recommends documenting).
func (t *Terminal) writeText(text string) {
	for _, ch := range text {
		if t.cursor.Col > t.cols {
			t.advanceRow(true)
			t.cursor.Col = 1
		}
		line := t.currentLine()
		line.Cells[t.cursor.Col-1] = Cell{Ch: ch, Attrs: t.attrs}
		line.Changed = true
		t.cursor.Col++
	}
}

// handleControl applies one of the standalone C0 control tokens
// (spec.md §4.4.2).
func (t *Terminal) handleControl(c rune) {
	switch c {
	case cBEL:
		t.bell.Ring()
	case cBS:
		col := t.cursor.Col - 1
		if col < 1 {
			col = 1
		}
		t.cursor.Col = col
	case cCR:
		t.cursor.Col = 1
	case cLF:
		t.advanceRow(false)
	}
}

// handleEscape decodes and applies one complete escape-sequence token
// (spec.md §4.4.3).
func (t *Terminal) handleEscape(raw string) {
	de := DecodeEscape(raw)
	switch de.Kind {
	case EscapeSaveCursor:
		t.savedState = &savedState{pos: t.cursor, attrs: t.attrs}
	case EscapeRestoreCursor:
		if t.savedState != nil {
			t.cursor = t.savedState.pos
			t.attrs = t.savedState.attrs
		}
	case EscapeCSI:
		t.handleCSI(de.CSI)
	case EscapeFp, EscapeFs, EscapeCharsetSelect:
		// Recognized forms of the grammar with no grid effect.
	case EscapeUnsupported:
		t.pendingUnsupported = append(t.pendingUnsupported, raw)
	}
}

// Update feeds bytes into the engine and returns the events generated:
// changed lines (oldest id first), pending responses, and unsupported-
// sequence diagnostics (spec.md §4.4.5). Never blocks, never panics on
// malformed input (spec.md §5, §7).
func (t *Terminal) Update(data []byte) []Event {
	t.pendingResponses = nil
	t.pendingUnsupported = nil

	for _, l := range t.lines {
		l.reset()
	}

	t.tokenizer.Write(data)
	for {
		tok, ok := t.tokenizer.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case TokenText:
			t.writeText(tok.Text)
		case TokenControl:
			t.handleControl(tok.Control)
		case TokenEscape:
			t.handleEscape(tok.Text)
		}
	}

	if t.cursorVisible {
		t.currentLine().setCursor(t.cursor)
	}

	var events []Event
	for _, resp := range t.pendingResponses {
		events = append(events, Event{Kind: EventResponse, Response: resp})
	}
	for _, raw := range t.pendingUnsupported {
		events = append(events, Event{Kind: EventUnsupported, Raw: raw})
	}
	for _, l := range t.lines {
		if l.hasChanged() {
			events = append(events, Event{Kind: EventLineChanged, LineID: l.ID, Rendered: RenderLine(l)})
		}
	}

	return events
}
