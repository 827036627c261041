package vt510term

// Attrs is the per-cell styling record (spec.md §3). Equality is structural
// over every field so that adjacent cells with identical attributes collapse
// into a single styled run during rendering (spec.md §8 invariant 3).
// Reverse never swaps the stored colors directly; reversal is a pure
// rendering concern resolved in render.go.
type Attrs struct {
	Bold         bool
	Dim          bool
	Italic       bool
	Crossed      bool
	Underline    bool
	Superscript  bool
	Subscript    bool
	Reverse      bool
	Overline     bool
	CursorHere   bool

	FgColor string
	BgColor string

	DefaultFgColor string
	DefaultBgColor string
}

// defaultAttrs returns the initial attribute state for a palette, captured at
// construction (spec.md §3 "plus the default fg/bg captured at construction").
func defaultAttrs(p *Palette) Attrs {
	fg := p.Fg(7)
	bg := p.Bg(0)
	return Attrs{
		FgColor:        fg,
		BgColor:        bg,
		DefaultFgColor: fg,
		DefaultBgColor: bg,
	}
}

// Reset restores a to its default values, including the palette-resolved
// default fg/bg (spec.md §4.4.3 "RESET restores fields to their default
// values including the palette-resolved default fg/bg"). CursorHere is a
// per-cell render marker, not an SGR-controlled attribute, and survives reset.
func (a *Attrs) Reset() {
	defFg, defBg, cursorHere := a.DefaultFgColor, a.DefaultBgColor, a.CursorHere
	*a = Attrs{
		FgColor:        defFg,
		BgColor:        defBg,
		DefaultFgColor: defFg,
		DefaultBgColor: defBg,
		CursorHere:     cursorHere,
	}
}

// Equal reports whether a and b have identical styling (spec.md §8 invariant 4).
func (a Attrs) Equal(b Attrs) bool {
	return a == b
}
