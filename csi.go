package vt510term

// handleCSI dispatches one decoded CSI sequence against the terminal state
// (spec.md §4.4.3). Grounded on original_source/terminal.py's
// TerminalState.handle_csi, expressed as a closed switch over CSIKind
// instead of an if/elif chain over a string enum.
func (t *Terminal) handleCSI(csi *CSIEscape) {
	switch csi.Kind {
	case CSICursorUp:
		t.moveCursorRel(-csi.N, 0)
	case CSICursorDown:
		t.moveCursorRel(csi.N, 0)
	case CSICursorForward:
		t.moveCursorRel(0, csi.N)
	case CSICursorBack:
		t.moveCursorRel(0, -csi.N)
	case CSICursorNextLine:
		t.setCursor(t.cursor.Row+csi.N, 1)
	case CSICursorPrevLine:
		t.setCursor(t.cursor.Row-csi.N, 1)
	case CSICursorHorizontalAbsolute:
		t.setCursor(t.cursor.Row, csi.N)
	case CSICursorVerticalAbsolute:
		t.setCursor(csi.N, t.cursor.Col)
	case CSICursorPosition, CSIHorizontalVerticalPositioning:
		t.setCursor(csi.N, csi.M)

	case CSIEraseInDisplay:
		t.eraseInDisplay(csi.N)
	case CSIEraseInLine:
		t.eraseInLine(csi.N)

	case CSIInsertLine:
		t.insertLine(csi.N)
	case CSIDeleteLine:
		t.deleteLine(csi.N)
	case CSIInsertCharacter:
		t.insertChar(csi.N)
	case CSIDeleteChar:
		t.deleteChar(csi.N)

	case CSISaveCursorPosition:
		pos := t.cursor
		t.savedPos = &pos
	case CSIRestoreCursorPosition:
		if t.savedPos != nil {
			t.setCursor(t.savedPos.Row, t.savedPos.Col)
		}

	case CSISGR:
		t.applySGR(csi.SGR)

	case CSIPrimaryDeviceAttributes:
		t.pendingResponses = append(t.pendingResponses, []byte("\x1b[?64;c"))

	case CSIEnable:
		t.setPrivateMode(csi.Mode, true)
	case CSIDisable:
		t.setPrivateMode(csi.Mode, false)

	case CSIUnsupported:
		// unreachable: DecodeEscape reclassifies an unsupported final as
		// EscapeUnsupported before handleEscape ever reaches handleCSI.
	}
}

// setPrivateMode applies a DEC private mode enable/disable (spec.md §4.3).
func (t *Terminal) setPrivateMode(mode PrivateMode, enable bool) {
	switch mode {
	case PrivateModeCursor:
		t.cursorVisible = enable
	case PrivateModeBracketedPaste:
		// Recognized, no grid effect (spec.md's engine has no paste concept).
	case PrivateModeUnsupported:
		// unreachable: decodeCSI reclassifies an unrecognized private mode as
		// CSIUnsupported, which DecodeEscape turns into EscapeUnsupported
		// before handleEscape ever reaches handleCSI.
	}
}

// eraseInLine clears part or all of the cursor's line (spec.md §4.4.3).
func (t *Terminal) eraseInLine(mode int) {
	line := t.currentLine()
	col := t.cursor.Col

	switch mode {
	case 0: // cursor to end of line
		for i := col - 1; i < len(line.Cells); i++ {
			line.Cells[i] = blankCell(t.attrs)
		}
	case 1: // start of line to cursor
		end := col
		if end > len(line.Cells) {
			end = len(line.Cells)
		}
		for i := 0; i < end; i++ {
			line.Cells[i] = blankCell(t.attrs)
		}
	case 2: // whole line
		line.clear(t.attrs)
		return
	default:
		return
	}
	line.Changed = true
}

// eraseInDisplay clears part or all of the viewport, and for mode 3 the
// scrollback too (spec.md §4.4.3; mode 3 is the supplemented behavior
// recorded in SPEC_FULL.md rather than left unimplemented).
func (t *Terminal) eraseInDisplay(mode int) {
	switch mode {
	case 0: // cursor to end of screen
		t.eraseInLine(0)
		for r := t.cursor.Row + 1; r <= t.rows; r++ {
			t.lines[r-1].clear(t.attrs)
		}
	case 1: // start of screen to cursor
		for r := 1; r < t.cursor.Row; r++ {
			t.lines[r-1].clear(t.attrs)
		}
		t.eraseInLine(1)
	case 2: // whole screen
		for _, l := range t.lines {
			l.clear(t.attrs)
		}
	case 3: // whole screen and scrollback
		for _, l := range t.lines {
			l.clear(t.attrs)
		}
		t.scrollback.Clear()
	}
}

// insertLine inserts n blank lines at the cursor row, shifting the cursor
// row and everything below it down; lines pushed past the bottom of the
// viewport are discarded (spec.md §4.4.3). Line ids never change here: per
// spec.md §3's lifecycle ("ids are only minted at scroll-up") and
// original_source/terminal.py's insert_line, cell content is swapped
// between the existing row-pinned *Line objects instead of allocating new
// ones, so row order stays id order.
func (t *Terminal) insertLine(n int) {
	if n <= 0 {
		n = 1
	}
	top := t.cursor.Row - 1
	bottom := len(t.lines) - 1
	for row := bottom; row >= top; row-- {
		if src := row - n; src >= top {
			copy(t.lines[row].Cells, t.lines[src].Cells)
			t.lines[row].Wrapped = t.lines[src].Wrapped
		} else {
			t.lines[row].clear(t.attrs)
		}
	}
	markChanged(t.lines[top:])
}

// deleteLine removes n lines at the cursor row, shifting everything below
// up and blanking the exposed rows at the bottom (spec.md §4.4.3). Same
// id-pinning approach as insertLine: no new line ids are minted here.
func (t *Terminal) deleteLine(n int) {
	if n <= 0 {
		n = 1
	}
	top := t.cursor.Row - 1
	bottom := len(t.lines) - 1
	for row := top; row <= bottom; row++ {
		if src := row + n; src <= bottom {
			copy(t.lines[row].Cells, t.lines[src].Cells)
			t.lines[row].Wrapped = t.lines[src].Wrapped
		} else {
			t.lines[row].clear(t.attrs)
		}
	}
	markChanged(t.lines[top:])
}

func markChanged(lines []*Line) {
	for _, l := range lines {
		l.Changed = true
	}
}

// insertChar inserts n blank cells at the cursor column, shifting the rest
// of the line right and truncating at the viewport width (spec.md §4.4.3).
func (t *Terminal) insertChar(n int) {
	if n <= 0 {
		n = 1
	}
	line := t.currentLine()
	col := t.cursor.Col - 1
	if col > len(line.Cells) {
		col = len(line.Cells)
	}

	blanks := make([]Cell, n)
	for i := range blanks {
		blanks[i] = blankCell(t.attrs)
	}

	merged := append(append([]Cell{}, line.Cells[:col]...), blanks...)
	merged = append(merged, line.Cells[col:]...)
	if len(merged) > t.cols {
		merged = merged[:t.cols]
	}
	line.Cells = merged
	line.Changed = true
}

// deleteChar removes n cells at the cursor column, shifting the rest of the
// line left and padding the end with blanks (spec.md §4.4.3).
func (t *Terminal) deleteChar(n int) {
	if n <= 0 {
		n = 1
	}
	line := t.currentLine()
	col := t.cursor.Col - 1
	if col > len(line.Cells) {
		col = len(line.Cells)
	}
	end := col + n
	if end > len(line.Cells) {
		end = len(line.Cells)
	}

	merged := append(append([]Cell{}, line.Cells[:col]...), line.Cells[end:]...)
	for len(merged) < t.cols {
		merged = append(merged, blankCell(t.attrs))
	}
	line.Cells = merged
	line.Changed = true
}
