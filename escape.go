package vt510term

import "strconv"

// EscapeKind tags the variant carried by a DecodedEscape (spec.md §4.3).
type EscapeKind int

const (
	EscapeSaveCursor EscapeKind = iota
	EscapeRestoreCursor
	EscapeCSI
	EscapeFp
	EscapeFs
	EscapeCharsetSelect
	EscapeUnsupported
)

// DecodedEscape is the typed record produced by decoding one complete
// escape-sequence token (spec.md §4.3).
type DecodedEscape struct {
	Kind EscapeKind
	CSI  *CSIEscape
	Raw  string
}

// CSIKind enumerates the CSI final bytes this engine interprets
// (spec.md §4.3-§4.4).
type CSIKind int

const (
	CSIUnsupported CSIKind = iota
	CSICursorUp
	CSICursorDown
	CSICursorForward
	CSICursorBack
	CSICursorNextLine
	CSICursorPrevLine
	CSICursorHorizontalAbsolute
	CSICursorPosition
	CSIEraseInDisplay
	CSIEraseInLine
	CSIInsertLine
	CSIDeleteLine
	CSIDeleteChar
	CSICursorVerticalAbsolute
	CSIHorizontalVerticalPositioning
	CSIEnable
	CSIDisable
	CSISaveCursorPosition
	CSIRestoreCursorPosition
	CSISGR
	CSIPrimaryDeviceAttributes
	CSIInsertCharacter
)

// csiFinals maps a CSI final byte to its CSIKind.
var csiFinals = map[rune]CSIKind{
	'A': CSICursorUp,
	'B': CSICursorDown,
	'C': CSICursorForward,
	'D': CSICursorBack,
	'E': CSICursorNextLine,
	'F': CSICursorPrevLine,
	'G': CSICursorHorizontalAbsolute,
	'H': CSICursorPosition,
	'J': CSIEraseInDisplay,
	'K': CSIEraseInLine,
	'L': CSIInsertLine,
	'M': CSIDeleteLine,
	'P': CSIDeleteChar,
	'd': CSICursorVerticalAbsolute,
	'f': CSIHorizontalVerticalPositioning,
	'h': CSIEnable,
	'l': CSIDisable,
	's': CSISaveCursorPosition,
	'u': CSIRestoreCursorPosition,
	'm': CSISGR,
	'c': CSIPrimaryDeviceAttributes,
	'@': CSIInsertCharacter,
}

// PrivateMode enumerates the DEC private modes this engine recognizes
// (spec.md §4.3).
type PrivateMode int

const (
	PrivateModeUnsupported PrivateMode = iota
	PrivateModeCursor                  // ?25 - show/hide cursor
	PrivateModeBracketedPaste          // ?2004 - recognized, no grid effect
)

func privateModeOf(n int) PrivateMode {
	switch n {
	case 25:
		return PrivateModeCursor
	case 2004:
		return PrivateModeBracketedPaste
	default:
		return PrivateModeUnsupported
	}
}

// CSIEscape is the decoded form of a CSI token (spec.md §4.3).
type CSIEscape struct {
	Final   rune
	Kind    CSIKind
	N       int
	M       int
	Private bool
	Mode    PrivateMode // valid when Kind is CSIEnable/CSIDisable
	SGR     []SGREntry
}

// DecodeEscape parses a complete escape-sequence token (as produced by
// Tokenizer) into a DecodedEscape (spec.md §4.3). Grounded on
// original_source/terminal.py's EscapeObj.decode/decode_csi/decode_sgr.
func DecodeEscape(raw string) DecodedEscape {
	rs := []rune(raw)
	if len(rs) < 2 || rs[0] != cESC {
		return DecodedEscape{Kind: EscapeUnsupported, Raw: raw}
	}

	if len(rs) == 2 {
		switch rs[1] {
		case '7':
			return DecodedEscape{Kind: EscapeSaveCursor, Raw: raw}
		case '8':
			return DecodedEscape{Kind: EscapeRestoreCursor, Raw: raw}
		}
		b := rs[1]
		switch {
		case b >= 0x60 && b <= 0x7E:
			return DecodedEscape{Kind: EscapeFp, Raw: raw}
		case b >= 0x30 && b <= 0x3F:
			return DecodedEscape{Kind: EscapeFs, Raw: raw}
		}
		return DecodedEscape{Kind: EscapeUnsupported, Raw: raw}
	}

	if len(rs) == 3 && rs[1] == '(' {
		return DecodedEscape{Kind: EscapeCharsetSelect, Raw: raw}
	}

	if rs[1] == '[' {
		csi := decodeCSI(rs)
		if csi.Kind == CSIUnsupported {
			return DecodedEscape{Kind: EscapeUnsupported, Raw: raw}
		}
		return DecodedEscape{Kind: EscapeCSI, CSI: csi, Raw: raw}
	}

	return DecodedEscape{Kind: EscapeUnsupported, Raw: raw}
}

// decodeCSI parses the body of "ESC [ ... F" (rs includes ESC and F).
func decodeCSI(rs []rune) *CSIEscape {
	final := rs[len(rs)-1]
	kind, ok := csiFinals[final]
	if !ok {
		kind = CSIUnsupported
	}

	body := rs[2 : len(rs)-1]
	private := false
	if len(body) > 0 && body[0] == '?' {
		private = true
		body = body[1:]
	}

	defaultN := 1
	if kind == CSIEraseInDisplay || kind == CSIEraseInLine {
		defaultN = 0
	}

	params := splitCSIParams(string(body))
	n, m := defaultN, 1
	if len(params) > 0 {
		n = atoiOr(params[0], defaultN)
	}
	if len(params) > 1 {
		m = atoiOr(params[1], 1)
	}

	csi := &CSIEscape{Final: final, Kind: kind, N: n, M: m, Private: private}

	if kind == CSISGR {
		csi.SGR = decodeSGR(params)
	}

	if kind == CSIEnable || kind == CSIDisable {
		csi.Mode = privateModeOf(n)
		if csi.Mode == PrivateModeUnsupported {
			// An unrecognized DEC private mode is as unsupported as an
			// unrecognized final byte: fold it into the same diagnostic path.
			csi.Kind = CSIUnsupported
		}
	}

	return csi
}

// splitCSIParams splits a CSI parameter section on ';', treating ':' as
// equivalent, and drops empty fields (spec.md §4.3).
func splitCSIParams(body string) []string {
	normalized := make([]rune, 0, len(body))
	for _, r := range body {
		if r == ':' {
			r = ';'
		}
		normalized = append(normalized, r)
	}

	var out []string
	start := 0
	s := string(normalized)
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// SGRKind enumerates the Select Graphic Rendition parameter kinds this
// engine interprets (spec.md §4.3). Values match the literal SGR parameter
// number for the simple kinds.
type SGRKind int

const (
	SGRReset            SGRKind = 0
	SGRBold             SGRKind = 1
	SGRDim              SGRKind = 2
	SGRItalic           SGRKind = 3
	SGRUnderline        SGRKind = 4
	SGRSlowBlink        SGRKind = 5
	SGRReverseVideo     SGRKind = 7
	SGRCrossed          SGRKind = 9
	SGRNormalIntensity  SGRKind = 22
	SGRNotItalic        SGRKind = 23
	SGRNotUnderlined    SGRKind = 24
	SGRNotBlinking      SGRKind = 25
	SGRNotReversed      SGRKind = 27
	SGRNotCrossed       SGRKind = 29
	SGRFgBlack          SGRKind = 30
	SGRFgRed            SGRKind = 31
	SGRFgGreen          SGRKind = 32
	SGRFgYellow         SGRKind = 33
	SGRFgBlue           SGRKind = 34
	SGRFgMagenta        SGRKind = 35
	SGRFgCyan           SGRKind = 36
	SGRFgWhite          SGRKind = 37
	SGRSetFgColor       SGRKind = 38
	SGRSetFgColorDefault SGRKind = 39
	SGRBgBlack          SGRKind = 40
	SGRBgRed            SGRKind = 41
	SGRBgGreen          SGRKind = 42
	SGRBgYellow         SGRKind = 43
	SGRBgBlue           SGRKind = 44
	SGRBgMagenta        SGRKind = 45
	SGRBgCyan           SGRKind = 46
	SGRBgWhite          SGRKind = 47
	SGRSetBgColor       SGRKind = 48
	SGRSetBgColorDefault SGRKind = 49
	SGRFramed           SGRKind = 51
	SGROverline         SGRKind = 53
	SGRNotOverline      SGRKind = 55
	SGRSetUlColor       SGRKind = 58
	SGRSuperscript      SGRKind = 73
	SGRSubscript        SGRKind = 74
	SGRFgBrBlack        SGRKind = 90
	SGRFgBrRed          SGRKind = 91
	SGRFgBrGreen        SGRKind = 92
	SGRFgBrYellow       SGRKind = 93
	SGRFgBrBlue         SGRKind = 94
	SGRFgBrMagenta      SGRKind = 95
	SGRFgBrCyan         SGRKind = 96
	SGRFgBrWhite        SGRKind = 97
	SGRBgBrBlack        SGRKind = 100
	SGRBgBrRed          SGRKind = 101
	SGRBgBrGreen        SGRKind = 102
	SGRBgBrYellow       SGRKind = 103
	SGRBgBrBlue         SGRKind = 104
	SGRBgBrMagenta      SGRKind = 105
	SGRBgBrCyan         SGRKind = 106
	SGRBgBrWhite        SGRKind = 107
	SGRUnsupported      SGRKind = 0xFFFF
)

// ColorMode tags how an extended-color SGR entry (38/48) selects a color.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// SGREntry is one parsed SGR parameter (spec.md §4.3). Color/ColorMode/RGB
// are only meaningful when Kind is SGRSetFgColor or SGRSetBgColor.
type SGREntry struct {
	Kind      SGRKind
	ColorMode ColorMode
	Color     int // palette index, when ColorMode == ColorMode256
	R, G, B   int // when ColorMode == ColorModeTrueColor
}

var knownSGRKinds = map[int]SGRKind{
	0: SGRReset, 1: SGRBold, 2: SGRDim, 3: SGRItalic, 4: SGRUnderline,
	5: SGRSlowBlink, 7: SGRReverseVideo, 9: SGRCrossed,
	22: SGRNormalIntensity, 23: SGRNotItalic, 24: SGRNotUnderlined,
	25: SGRNotBlinking, 27: SGRNotReversed, 29: SGRNotCrossed,
	30: SGRFgBlack, 31: SGRFgRed, 32: SGRFgGreen, 33: SGRFgYellow,
	34: SGRFgBlue, 35: SGRFgMagenta, 36: SGRFgCyan, 37: SGRFgWhite,
	38: SGRSetFgColor, 39: SGRSetFgColorDefault,
	40: SGRBgBlack, 41: SGRBgRed, 42: SGRBgGreen, 43: SGRBgYellow,
	44: SGRBgBlue, 45: SGRBgMagenta, 46: SGRBgCyan, 47: SGRBgWhite,
	48: SGRSetBgColor, 49: SGRSetBgColorDefault,
	51: SGRFramed, 53: SGROverline, 55: SGRNotOverline, 58: SGRSetUlColor,
	73: SGRSuperscript, 74: SGRSubscript,
	90: SGRFgBrBlack, 91: SGRFgBrRed, 92: SGRFgBrGreen, 93: SGRFgBrYellow,
	94: SGRFgBrBlue, 95: SGRFgBrMagenta, 96: SGRFgBrCyan, 97: SGRFgBrWhite,
	100: SGRBgBrBlack, 101: SGRBgBrRed, 102: SGRBgBrGreen, 103: SGRBgBrYellow,
	104: SGRBgBrBlue, 105: SGRBgBrMagenta, 106: SGRBgBrCyan, 107: SGRBgBrWhite,
}

// decodeSGR consumes CSI parameters left-to-right, producing an ordered list
// of SGREntry (spec.md §4.3). Grounded on
// original_source/terminal.py's SGR.decode.
func decodeSGR(params []string) []SGREntry {
	if len(params) == 0 {
		return []SGREntry{{Kind: SGRReset}}
	}

	var entries []SGREntry
	i := 0
	for i < len(params) {
		code := atoiOr(params[i], -1)
		kind, known := knownSGRKinds[code]
		if !known {
			kind = SGRUnsupported
		}
		entry := SGREntry{Kind: kind}
		consumed := 1

		if kind == SGRSetFgColor || kind == SGRSetBgColor {
			if i+1 < len(params) {
				mode := atoiOr(params[i+1], -1)
				switch mode {
				case 5: // 256-color selection
					if i+2 < len(params) {
						entry.ColorMode = ColorMode256
						entry.Color = atoiOr(params[i+2], 0)
						consumed = 3
					}
				case 2: // truecolor, recognized, may be no-op
					if i+4 < len(params) {
						entry.ColorMode = ColorModeTrueColor
						entry.R = atoiOr(params[i+2], 0)
						entry.G = atoiOr(params[i+3], 0)
						entry.B = atoiOr(params[i+4], 0)
						consumed = 5
					}
				}
			}
		}

		entries = append(entries, entry)
		i += consumed
	}

	return entries
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
