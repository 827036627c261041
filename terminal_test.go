package vt510term

import (
	"strings"
	"testing"
)

func cellChar(term *Terminal, row, col int) rune {
	line := term.Line(row)
	if line == nil || col < 1 || col > len(line.Cells) {
		return 0
	}
	return line.Cells[col-1].Ch
}

// TestFreshCursorStartsAtBottomRow documents the convention behind scenarios
// S1/S2: a new terminal's cursor starts at the bottom row, not the top.
func TestFreshCursorStartsAtBottomRow(t *testing.T) {
	term := New(WithSize(24, 80))
	if got := term.Cursor(); got != (Pos{Row: 24, Col: 1}) {
		t.Errorf("fresh cursor = %+v, want (24, 1)", got)
	}
}

// TestScenarioS1 is spec.md §8 S1.
func TestScenarioS1(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("A\x1b[31mB\x1b[0mC"))

	if got := cellChar(term, 24, 1); got != 'A' {
		t.Errorf("cell(24,1) = %q, want 'A'", got)
	}
	if got := cellChar(term, 24, 2); got != 'B' {
		t.Errorf("cell(24,2) = %q, want 'B'", got)
	}
	if got := cellChar(term, 24, 3); got != 'C' {
		t.Errorf("cell(24,3) = %q, want 'C'", got)
	}

	line := term.Line(24)
	defaultAttr := defaultAttrs(term.Palette())
	if !line.Cells[0].Attrs.Equal(defaultAttr) {
		t.Errorf("cell(24,1).Attrs = %+v, want default attrs", line.Cells[0].Attrs)
	}
	if line.Cells[1].Attrs.FgColor != term.Palette().Fg(1) {
		t.Errorf("cell(24,2).Attrs.FgColor = %q, want red %q", line.Cells[1].Attrs.FgColor, term.Palette().Fg(1))
	}
	if !line.Cells[2].Attrs.Equal(defaultAttr) {
		t.Errorf("cell(24,3).Attrs = %+v, want default attrs after RESET", line.Cells[2].Attrs)
	}

	if got := term.Cursor(); got != (Pos{Row: 24, Col: 4}) {
		t.Errorf("cursor = %+v, want (24, 4)", got)
	}
}

// TestScenarioS2 is spec.md §8 S2: CR does not clear the line.
func TestScenarioS2(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("XY\rZ"))

	if got := cellChar(term, 24, 1); got != 'Z' {
		t.Errorf("cell(24,1) = %q, want 'Z'", got)
	}
	if got := cellChar(term, 24, 2); got != 'Y' {
		t.Errorf("cell(24,2) = %q, want 'Y'", got)
	}
	if got := term.Cursor(); got != (Pos{Row: 24, Col: 2}) {
		t.Errorf("cursor = %+v, want (24, 2)", got)
	}
}

// TestScenarioS3 is spec.md §8 S3.
func TestScenarioS3(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("garbage on the screen"))
	term.Update([]byte("\x1b[2J\x1b[H*"))

	for row := 1; row <= term.Rows(); row++ {
		line := term.Line(row)
		for col, c := range line.Cells {
			if row == 1 && col == 0 {
				continue
			}
			if c.Ch != ' ' {
				t.Fatalf("cell(%d,%d) = %q, want blank after \\e[2J", row, col+1, c.Ch)
			}
		}
	}
	if got := cellChar(term, 1, 1); got != '*' {
		t.Errorf("cell(1,1) = %q, want '*'", got)
	}
	if got := term.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Errorf("cursor = %+v, want (1, 2)", got)
	}
}

// TestScenarioS4 is spec.md §8 S4.
func TestScenarioS4(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("\x1b[5;10Hhi"))

	if got := cellChar(term, 5, 10); got != 'h' {
		t.Errorf("cell(5,10) = %q, want 'h'", got)
	}
	if got := cellChar(term, 5, 11); got != 'i' {
		t.Errorf("cell(5,11) = %q, want 'i'", got)
	}
	if got := term.Cursor(); got != (Pos{Row: 5, Col: 12}) {
		t.Errorf("cursor = %+v, want (5, 12)", got)
	}
}

// TestScenarioS5 is spec.md §8 S5.
func TestScenarioS5(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("abc\x1b[2Dx"))

	if got := cellChar(term, 24, 1); got != 'a' {
		t.Errorf("cell(24,1) = %q, want 'a'", got)
	}
	if got := cellChar(term, 24, 2); got != 'x' {
		t.Errorf("cell(24,2) = %q, want 'x' (overwritten 'b')", got)
	}
	if got := cellChar(term, 24, 3); got != 'c' {
		t.Errorf("cell(24,3) = %q, want 'c'", got)
	}
	if got := term.Cursor().Col; got != 3 {
		t.Errorf("cursor column = %d, want 3", got)
	}
}

// TestScenarioS6 is spec.md §8 S6.
func TestScenarioS6(t *testing.T) {
	term := New(WithSize(24, 80))
	events := term.Update([]byte("\x1b[c"))

	var gotResponse bool
	for _, ev := range events {
		if ev.Kind == EventLineChanged {
			t.Errorf("unexpected EventLineChanged %+v, want no grid change", ev)
		}
		if ev.Kind == EventResponse {
			gotResponse = true
			if string(ev.Response) != "\x1b[?64;c" {
				t.Errorf("response = %q, want ESC[?64;c", ev.Response)
			}
		}
	}
	if !gotResponse {
		t.Fatalf("events = %+v, want an EventResponse", events)
	}
}

// TestScenarioS7 is spec.md §8 S7: chunk-independence across Update calls.
func TestScenarioS7(t *testing.T) {
	whole := New(WithSize(24, 80))
	whole.Update([]byte("hi\x1b[31mX"))

	split := New(WithSize(24, 80))
	split.Update([]byte("hi\x1b"))
	split.Update([]byte("[31mX"))

	if whole.Cursor() != split.Cursor() {
		t.Errorf("cursor mismatch: whole=%+v split=%+v", whole.Cursor(), split.Cursor())
	}
	for col := 1; col <= 3; col++ {
		wc := cellChar(whole, 24, col)
		sc := cellChar(split, 24, col)
		if wc != sc {
			t.Errorf("cell(24,%d) mismatch: whole=%q split=%q", col, wc, sc)
		}
	}
	if got := cellChar(split, 24, 3); got != 'X' {
		t.Errorf("cell(24,3) = %q, want 'X'", got)
	}
	if split.Line(24).Cells[2].Attrs.FgColor != split.Palette().Fg(1) {
		t.Errorf("split X attrs fg = %q, want red", split.Line(24).Cells[2].Attrs.FgColor)
	}
}

// TestInvariant2CursorBounds is spec.md §8 invariant 2.
func TestInvariant2CursorBounds(t *testing.T) {
	term := New(WithSize(5, 5))
	term.Update([]byte(strings.Repeat("x", 20)))

	cur := term.Cursor()
	if cur.Row < 1 || cur.Row > term.Rows() {
		t.Errorf("cursor.Row = %d, want within [1, %d]", cur.Row, term.Rows())
	}
	if cur.Col < 1 || cur.Col > term.Cols()+1 {
		t.Errorf("cursor.Col = %d, want within [1, %d]", cur.Col, term.Cols()+1)
	}
}

// TestInvariant4SGRResetRestoresDefaults is spec.md §8 invariant 4.
func TestInvariant4SGRResetRestoresDefaults(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("\x1b[1;3;4;31;44m"))
	term.Update([]byte("\x1b[0m"))

	if !term.attrs.Equal(defaultAttrs(term.Palette())) {
		t.Errorf("attrs after RESET = %+v, want defaults", term.attrs)
	}
}

// TestInvariant5DECSCDECRCRestoresPositionAndAttrs is spec.md §8 invariant 5.
func TestInvariant5DECSCDECRCRestoresPositionAndAttrs(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("\x1b[10;10H\x1b[31m\x1b7"))
	savedAttrs := term.attrs

	term.Update([]byte("\x1b[1;1Hhello\x1b[0m"))
	term.Update([]byte("\x1b8"))

	if got := term.Cursor(); got != (Pos{Row: 10, Col: 10}) {
		t.Errorf("cursor after DECRC = %+v, want (10, 10)", got)
	}
	if !term.attrs.Equal(savedAttrs) {
		t.Errorf("attrs after DECRC = %+v, want saved %+v", term.attrs, savedAttrs)
	}
	if got := cellChar(term, 1, 1); got != 'h' {
		t.Errorf("intervening text was rewound: cell(1,1) = %q, want 'h'", got)
	}
}

// TestInvariant6ScrollUpPreservesLineIDs is spec.md §8 invariant 6.
func TestInvariant6ScrollUpPreservesLineIDs(t *testing.T) {
	term := New(WithSize(3, 10))
	beforeBottomID := term.Line(3).ID

	term.Update([]byte("\r\n\r\n\r\n\r\n"))

	newBottomID := term.Line(3).ID
	if newBottomID <= beforeBottomID {
		t.Errorf("new bottom line id = %d, want strictly greater than %d", newBottomID, beforeBottomID)
	}
	if term.scrollback.Len() == 0 {
		t.Errorf("expected at least one line pushed into scrollback")
	}
}

func TestUpdateReturnsLineChangedOldestIDFirst(t *testing.T) {
	term := New(WithSize(3, 10))
	events := term.Update([]byte("a\r\nb\r\nc"))

	var seenIDs []int
	for _, ev := range events {
		if ev.Kind == EventLineChanged {
			seenIDs = append(seenIDs, ev.LineID)
		}
	}
	for i := 1; i < len(seenIDs); i++ {
		if seenIDs[i] <= seenIDs[i-1] {
			t.Errorf("line-changed events not oldest-id-first: %v", seenIDs)
			break
		}
	}
}

func TestResetClearsGridAndCursor(t *testing.T) {
	term := New(WithSize(24, 80))
	term.Update([]byte("\x1b[31mhello"))
	term.Reset()

	if got := cellChar(term, 24, 1); got != ' ' {
		t.Errorf("cell(24,1) after Reset = %q, want blank", got)
	}
	if got := term.Cursor(); got != (Pos{Row: 24, Col: 1}) {
		t.Errorf("cursor after Reset = %+v, want (24, 1)", got)
	}
}

func TestResizeShrinkRowsPushesToScrollback(t *testing.T) {
	term := New(WithSize(5, 10))
	before := term.scrollback.Len()
	term.Resize(3, 10)

	if term.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", term.Rows())
	}
	if term.scrollback.Len() <= before {
		t.Errorf("scrollback.Len() = %d, want more than %d after shrinking rows", term.scrollback.Len(), before)
	}
}

func TestUnsupportedEscapeSurfacesEvent(t *testing.T) {
	term := New(WithSize(24, 80))
	events := term.Update([]byte("\x1b[5z"))

	var got bool
	for _, ev := range events {
		if ev.Kind == EventUnsupported {
			got = true
		}
	}
	if !got {
		t.Errorf("events = %+v, want an EventUnsupported for an unrecognized CSI final", events)
	}
}

func TestInsertLineShiftsRowsDown(t *testing.T) {
	term := New(WithSize(3, 10))
	term.Update([]byte("\x1b[1;1Ha\x1b[2;1Hb\x1b[3;1Hc\x1b[2;1H\x1b[L"))

	if got := cellChar(term, 1, 1); got != 'a' {
		t.Errorf("cell(1,1) = %q, want 'a' (untouched, above the insert point)", got)
	}
	if got := cellChar(term, 2, 1); got != ' ' {
		t.Errorf("cell(2,1) after insert-line = %q, want blank", got)
	}
	if got := cellChar(term, 3, 1); got != 'b' {
		t.Errorf("cell(3,1) after insert-line = %q, want 'b' (shifted down, 'c' discarded)", got)
	}
}

// TestInsertLinePreservesRowIDOrder guards against insertLine/deleteLine
// minting fresh line ids for shifted rows: row order must stay id order
// (spec.md §4.4.5 "LineChanged events are ordered oldest-id-first"), and
// spec.md §3's lifecycle only mints new ids at scroll-up.
func TestInsertLinePreservesRowIDOrder(t *testing.T) {
	term := New(WithSize(3, 10))
	idsBefore := []int{term.Line(1).ID, term.Line(2).ID, term.Line(3).ID}

	term.Update([]byte("\x1b[1;1Ha\x1b[2;1Hb\x1b[3;1Hc\x1b[2;1H\x1b[L"))

	idsAfter := []int{term.Line(1).ID, term.Line(2).ID, term.Line(3).ID}
	for i := range idsBefore {
		if idsAfter[i] != idsBefore[i] {
			t.Errorf("row %d id changed from %d to %d; insertLine must not mint new ids", i+1, idsBefore[i], idsAfter[i])
		}
	}
	for i := 1; i < len(idsAfter); i++ {
		if idsAfter[i] <= idsAfter[i-1] {
			t.Errorf("row ids not monotonic after insertLine: %v", idsAfter)
		}
	}
}

func TestDeleteLinePreservesRowIDOrder(t *testing.T) {
	term := New(WithSize(3, 10))
	idsBefore := []int{term.Line(1).ID, term.Line(2).ID, term.Line(3).ID}

	term.Update([]byte("\x1b[1;1Ha\x1b[2;1Hb\x1b[3;1Hc\x1b[2;1H\x1b[M"))

	idsAfter := []int{term.Line(1).ID, term.Line(2).ID, term.Line(3).ID}
	for i := range idsBefore {
		if idsAfter[i] != idsBefore[i] {
			t.Errorf("row %d id changed from %d to %d; deleteLine must not mint new ids", i+1, idsBefore[i], idsAfter[i])
		}
	}
	if got := cellChar(term, 2, 1); got != 'c' {
		t.Errorf("cell(2,1) after delete-line = %q, want 'c' (shifted up)", got)
	}
	if got := cellChar(term, 3, 1); got != ' ' {
		t.Errorf("cell(3,1) after delete-line = %q, want blank (exposed at bottom)", got)
	}
}

// TestUnsupportedPrivateModeSurfacesEvent covers the same diagnostic path as
// TestUnsupportedEscapeSurfacesEvent for a DEC private mode outside the
// recognized set (?25, ?2004).
func TestUnsupportedPrivateModeSurfacesEvent(t *testing.T) {
	term := New(WithSize(24, 80))
	events := term.Update([]byte("\x1b[?99h"))

	var got bool
	for _, ev := range events {
		if ev.Kind == EventUnsupported {
			got = true
		}
	}
	if !got {
		t.Errorf("events = %+v, want an EventUnsupported for an unrecognized private mode", events)
	}
}

func TestInsertCharacterUsesRequestedCount(t *testing.T) {
	term := New(WithSize(3, 10))
	term.Update([]byte("abc\x1b[3;1H\x1b[2@"))

	if got := cellChar(term, 3, 1); got != ' ' || cellChar(term, 3, 2) != ' ' {
		t.Errorf("expected two blanks inserted at columns 1-2")
	}
	if got := cellChar(term, 3, 3); got != 'a' {
		t.Errorf("cell(3,3) = %q, want 'a' shifted right by 2", got)
	}
}
