package vt510term

import "fmt"

// Palette maps the 256 ANSI color indices to RGB hex strings. Indices 0-7 are
// the base colors, 8-15 their bright variants, 16-231 a 6x6x6 color cube, and
// 232-255 a 24-step greyscale ramp. The cube and ramp are identical across
// palettes; only the 16 base entries vary by terminal vendor.
type Palette struct {
	Name string
	base [16]string
}

// cube and greyscale are shared by every palette (spec.md §4.1).
var (
	colorCube  [216]string
	greyscale  [24]string
)

func init() {
	steps := [6]int{0, 95, 135, 175, 215, 255}
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				colorCube[i] = fmt.Sprintf("%02x%02x%02x", steps[r], steps[g], steps[b])
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		v := 8 + j*10
		greyscale[j] = fmt.Sprintf("%02x%02x%02x", v, v, v)
	}
}

// Fg returns the hex color for a foreground palette index (0-255).
func (p *Palette) Fg(idx int) string { return p.resolve(idx) }

// Bg returns the hex color for a background palette index (0-255).
func (p *Palette) Bg(idx int) string { return p.resolve(idx) }

func (p *Palette) resolve(idx int) string {
	switch {
	case idx < 0:
		return p.base[0]
	case idx < 16:
		return p.base[idx]
	case idx < 232:
		return colorCube[idx-16]
	case idx < 256:
		return greyscale[idx-232]
	default:
		return p.base[7]
	}
}

// Bright returns the bright-variant index (8-15) for a base index (0-7).
func (p *Palette) Bright(baseIdx int) int { return baseIdx + 8 }

// newPalette builds a Palette from 16 base hex strings (no leading '#').
func newPalette(name string, base [16]string) *Palette {
	return &Palette{Name: name, base: base}
}

// PalettePutty mirrors PuTTY's default 16-color scheme. This is the default
// palette (original_source/terminal.py: `self.palette = PalettePutty`).
var PalettePutty = newPalette("putty", [16]string{
	"000000", "bb0000", "00bb00", "bbbb00", "0000bb", "bb00bb", "00bbbb", "bbbbbb",
	"555555", "ff5555", "55ff55", "ffff55", "5555ff", "ff55ff", "55ffff", "ffffff",
})

// PaletteXtermL mirrors xterm's default 16-color scheme.
var PaletteXtermL = newPalette("xterm-l", [16]string{
	"000000", "cd0000", "00cd00", "cdcd00", "0000ee", "cd00cd", "00cdcd", "e5e5e5",
	"7f7f7f", "ff0000", "00ff00", "ffff00", "5c5cff", "ff00ff", "00ffff", "ffffff",
})

// PaletteWinXPL mirrors the classic Windows XP console 16-color scheme.
var PaletteWinXPL = newPalette("winxp-l", [16]string{
	"000000", "800000", "008000", "808000", "000080", "800080", "008080", "c0c0c0",
	"808080", "ff0000", "00ff00", "ffff00", "0000ff", "ff00ff", "00ffff", "ffffff",
})

// PaletteVSCodeL mirrors VS Code's integrated-terminal default 16-color scheme.
var PaletteVSCodeL = newPalette("vscode-l", [16]string{
	"000000", "cd3131", "0dbc79", "e5e510", "2472c8", "bc3fbc", "11a8cd", "e5e5e5",
	"666666", "f14c4c", "23d18b", "f5f543", "3b8eea", "d670d6", "29b8db", "ffffff",
})

// PaletteDefault is an alias for PalettePutty, named for hosts that want a
// vendor-neutral default (spec.md §6 "palette (one of the named palettes;
// default vendor-specific)").
var PaletteDefault = PalettePutty

// palettes indexes every named palette by its registry name for
// LookupPalette and WithPaletteName.
var palettes = map[string]*Palette{
	PalettePutty.Name:   PalettePutty,
	PaletteXtermL.Name:  PaletteXtermL,
	PaletteWinXPL.Name:  PaletteWinXPL,
	PaletteVSCodeL.Name: PaletteVSCodeL,
}

// LookupPalette returns a named palette, or PaletteDefault if name is unknown.
func LookupPalette(name string) *Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return PaletteDefault
}
