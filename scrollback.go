package vt510term

// ScrollbackProvider stores lines scrolled off the top of the viewport
// (spec.md §3 "scrollback of previously-scrolled lines preserved in-order").
// Grounded on the teacher's providers.go ScrollbackProvider interface.
type ScrollbackProvider interface {
	// Push appends a line to scrollback as its newest entry. Implementations should
	// evict the oldest entry if MaxLines is exceeded.
	Push(line *Line)
	// Len returns the number of stored lines.
	Len() int
	// Line returns the line at index (0 is the oldest). Returns nil if out
	// of range.
	Line(index int) *Line
	// Clear removes all stored lines (used by Erase in Display mode 3).
	Clear()
	// SetMaxLines sets the retention cap; 0 means unbounded.
	SetMaxLines(max int)
	// MaxLines returns the current retention cap.
	MaxLines() int
}

// MemoryScrollback is the default in-process ScrollbackProvider: a slice of
// *Line values that drops its oldest entries once it holds more than
// maxLines. The cap counts scrollback lines only; the viewport rows are not
// included in it.
type MemoryScrollback struct {
	lines   []*Line
	maxLines int
}

// NewMemoryScrollback creates a MemoryScrollback capped at maxLines (0 means
// unbounded).
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: maxLines}
}

// Push appends line, dropping the oldest entry if MaxLines is exceeded.
func (m *MemoryScrollback) Push(line *Line) {
	m.lines = append(m.lines, line)
	if m.maxLines > 0 {
		for len(m.lines) > m.maxLines {
			m.lines = m.lines[1:]
		}
	}
}

// Len returns the number of stored lines.
func (m *MemoryScrollback) Len() int { return len(m.lines) }

// Line returns the line at index (0 is oldest), or nil if out of range.
func (m *MemoryScrollback) Line(index int) *Line {
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

// Clear removes all stored lines.
func (m *MemoryScrollback) Clear() { m.lines = nil }

// SetMaxLines sets the retention cap, trimming immediately if needed.
func (m *MemoryScrollback) SetMaxLines(max int) {
	m.maxLines = max
	if max > 0 {
		for len(m.lines) > max {
			m.lines = m.lines[1:]
		}
	}
}

// MaxLines returns the current retention cap.
func (m *MemoryScrollback) MaxLines() int { return m.maxLines }

var _ ScrollbackProvider = (*MemoryScrollback)(nil)
