package vt510term

import "strings"

// RenderLine walks a line, coalescing contiguous cells with equal Attrs into
// a single styled HTML span, and returns the rendered line (spec.md §4.5).
// Grounded on original_source/terminal.py's
// TerminalLine.line_to_html/attr_to_html.
func RenderLine(line *Line) string {
	var b strings.Builder
	if line.Wrapped {
		b.WriteString(`<div style="line-height:30px;" data-wrapped="true">`)
	} else {
		b.WriteString(`<div style="line-height:30px;">`)
	}

	if len(line.Cells) == 0 {
		b.WriteString("</div>")
		return b.String()
	}

	runStart := 0
	runAttrs := line.Cells[0].Attrs
	for i := 1; i <= len(line.Cells); i++ {
		if i < len(line.Cells) && line.Cells[i].Attrs.Equal(runAttrs) {
			continue
		}
		writeSpan(&b, line.Cells[runStart:i], runAttrs)
		if i < len(line.Cells) {
			runStart = i
			runAttrs = line.Cells[i].Attrs
		}
	}

	b.WriteString("</div>")
	return b.String()
}

// writeSpan emits one <span> covering cells, all sharing attrs.
func writeSpan(b *strings.Builder, cells []Cell, attrs Attrs) {
	fg, bg := attrs.FgColor, attrs.BgColor
	if isReversed(attrs) {
		fg, bg = bg, fg
	}

	b.WriteString(`<span style="color:#`)
	b.WriteString(fg)
	b.WriteString(`;background-color:#`)
	b.WriteString(bg)
	b.WriteString(`;font-size:12pt;`)

	if attrs.Bold {
		b.WriteString("font-weight:bold;")
	}
	if attrs.Dim {
		b.WriteString("opacity:0.66;")
	}
	if attrs.Italic {
		b.WriteString("font-style:italic;")
	}
	if attrs.Underline {
		b.WriteString("text-decoration:underline;")
	}
	if attrs.Crossed {
		b.WriteString("text-decoration:line-through;")
	}
	if attrs.Overline {
		b.WriteString("text-decoration:overline;")
	}
	if attrs.Superscript {
		b.WriteString("vertical-align:super;font-size:8pt;")
	}
	if attrs.Subscript {
		b.WriteString("vertical-align:sub;font-size:8pt;")
	}

	b.WriteString(`">`)

	for _, c := range cells {
		writeEscapedRune(b, c.Ch)
	}

	b.WriteString("</span>")
}

// isReversed reports the effective reversal for rendering: reverse and
// cursor-here XOR to determine whether fg/bg are swapped (spec.md §4.5).
func isReversed(a Attrs) bool {
	return a.Reverse != a.CursorHere
}

// writeEscapedRune escapes '&', '<', '>' and renders ' ' as a non-breaking
// space (spec.md §4.5).
func writeEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '&':
		b.WriteString("&amp;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	case ' ':
		b.WriteString("&nbsp;")
	default:
		b.WriteRune(r)
	}
}
