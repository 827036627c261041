package vt510term

// applySGR applies a decoded sequence of SGR entries to the current
// attribute template, left to right (spec.md §4.4.3). Grounded on
// original_source/terminal.py's TerminalState.handle_sgr and
// TerminalAttributeState.
func (t *Terminal) applySGR(entries []SGREntry) {
	for _, e := range entries {
		switch e.Kind {
		case SGRReset:
			t.attrs.Reset()

		case SGRBold:
			t.attrs.Bold = true
		case SGRDim:
			t.attrs.Dim = true
		case SGRNormalIntensity:
			t.attrs.Bold = false
			t.attrs.Dim = false

		case SGRItalic:
			t.attrs.Italic = true
		case SGRNotItalic:
			t.attrs.Italic = false

		case SGRUnderline:
			t.attrs.Underline = true
		case SGRNotUnderlined:
			t.attrs.Underline = false

		case SGRCrossed:
			t.attrs.Crossed = true
		case SGRNotCrossed:
			t.attrs.Crossed = false

		case SGROverline:
			t.attrs.Overline = true
			t.attrs.Underline = false
			t.attrs.Crossed = false
		case SGRNotOverline:
			t.attrs.Overline = false

		case SGRSuperscript:
			t.attrs.Superscript = true
			t.attrs.Subscript = false
		case SGRSubscript:
			t.attrs.Subscript = true
			t.attrs.Superscript = false

		case SGRReverseVideo:
			t.attrs.Reverse = true
		case SGRNotReversed:
			t.attrs.Reverse = false

		case SGRSlowBlink, SGRNotBlinking, SGRFramed, SGRSetUlColor:
			// Recognized, not modeled in Attrs (spec.md's data model has no
			// blink/underline-color field).

		case SGRFgBlack, SGRFgRed, SGRFgGreen, SGRFgYellow, SGRFgBlue, SGRFgMagenta, SGRFgCyan, SGRFgWhite:
			t.attrs.FgColor = t.fgColorFromBase(int(e.Kind) - 30)
		case SGRBgBlack, SGRBgRed, SGRBgGreen, SGRBgYellow, SGRBgBlue, SGRBgMagenta, SGRBgCyan, SGRBgWhite:
			t.attrs.BgColor = t.palette.Bg(int(e.Kind) - 40)

		case SGRFgBrBlack, SGRFgBrRed, SGRFgBrGreen, SGRFgBrYellow, SGRFgBrBlue, SGRFgBrMagenta, SGRFgBrCyan, SGRFgBrWhite:
			t.attrs.FgColor = t.palette.Fg(t.palette.Bright(int(e.Kind) - 90))
		case SGRBgBrBlack, SGRBgBrRed, SGRBgBrGreen, SGRBgBrYellow, SGRBgBrBlue, SGRBgBrMagenta, SGRBgBrCyan, SGRBgBrWhite:
			t.attrs.BgColor = t.palette.Bg(t.palette.Bright(int(e.Kind) - 100))

		case SGRSetFgColorDefault:
			t.attrs.FgColor = t.attrs.DefaultFgColor
		case SGRSetBgColorDefault:
			t.attrs.BgColor = t.attrs.DefaultBgColor

		case SGRSetFgColor:
			if e.ColorMode == ColorMode256 {
				t.attrs.FgColor = t.palette.Fg(e.Color)
			}
			// Truecolor (ColorModeTrueColor) is recognized but not modeled:
			// spec.md's color model is the named/256-entry palette only.

		case SGRSetBgColor:
			if e.ColorMode == ColorMode256 {
				t.attrs.BgColor = t.palette.Bg(e.Color)
			}

		case SGRUnsupported:
			// Unknown SGR parameter number: ignored: the sequence as a whole
			// was already recognized as well-formed SGR.
		}
	}
}

// fgColorFromBase resolves one of the 8 base foreground colors, shifting to
// the bright variant when bold is set (spec.md §4.1, §4.4.3). Grounded on
// original_source/terminal.py's TerminalState.fg_color.
func (t *Terminal) fgColorFromBase(base int) string {
	idx := base
	if t.attrs.Bold {
		idx = t.palette.Bright(base)
	}
	return t.palette.Fg(idx)
}
