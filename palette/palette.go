/*
Package palette holds the fixed 16 color C64 palette and matches
arbitrary colors against it in Lab space.

The palette values are the VICE colodore set. All distance comparisons
happen in Lab where Euclidean distance tracks perceived color difference
much better than in raw RGB.
*/
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/retrobit/c64conv/pixel"
)

// The C64 colors in hardware order, color index 0 through 15.
var (
	Black      = pixel.RGB{R: 0x00, G: 0x00, B: 0x00}
	White      = pixel.RGB{R: 0xff, G: 0xff, B: 0xff}
	Red        = pixel.RGB{R: 0x9f, G: 0x4e, B: 0x44}
	Cyan       = pixel.RGB{R: 0x6a, G: 0xbf, B: 0xc6}
	Purple     = pixel.RGB{R: 0xa0, G: 0x57, B: 0xa3}
	Green      = pixel.RGB{R: 0x5c, G: 0xab, B: 0x5e}
	Blue       = pixel.RGB{R: 0x50, G: 0x45, B: 0x9b}
	Yellow     = pixel.RGB{R: 0xc9, G: 0xd4, B: 0x87}
	Orange     = pixel.RGB{R: 0xa1, G: 0x68, B: 0x3c}
	Brown      = pixel.RGB{R: 0x6d, G: 0x54, B: 0x12}
	LightRed   = pixel.RGB{R: 0xcb, G: 0x7e, B: 0x75}
	DarkGrey   = pixel.RGB{R: 0x62, G: 0x62, B: 0x62}
	Grey       = pixel.RGB{R: 0x89, G: 0x89, B: 0x89}
	LightGreen = pixel.RGB{R: 0x9a, G: 0xd2, B: 0x84}
	LightBlue  = pixel.RGB{R: 0x88, G: 0x7e, B: 0xcb}
	LightGrey  = pixel.RGB{R: 0xad, G: 0xad, B: 0xad}
)

var colors = [16]pixel.RGB{
	Black,
	White,
	Red,
	Cyan,
	Purple,
	Green,
	Blue,
	Yellow,
	Orange,
	Brown,
	LightRed,
	DarkGrey,
	Grey,
	LightGreen,
	LightBlue,
	LightGrey,
}

// How much of the accumulated dither error feeds into the next match.
const errorGain = 0.7

// Entry is one palette color with its precomputed Lab value.
type Entry struct {
	Lab pixel.Vec3
	RGB pixel.RGB
}

// Table is the palette with Lab values precomputed once. It is
// immutable after New and safe to share between any number of
// concurrent readers.
type Table struct {
	entries [16]Entry
}

// New builds the palette table.
func New() *Table {
	t := &Table{}
	for i, c := range colors {
		t.entries[i] = Entry{Lab: toLab(c), RGB: c}
	}
	return t
}

// Entries returns the palette in declaration order.
func (t *Table) Entries() []Entry {
	return t.entries[:]
}

// Match finds the palette entry closest to c after applying the
// accumulated dither error, and returns it together with the remaining
// error in Lab space. Ties go to the entry declared first, so results
// are fully deterministic.
func (t *Table) Match(c pixel.RGB, errIn pixel.Vec3) (pixel.RGB, pixel.Vec3) {
	trial := clampLab(toLab(c).Add(errIn.Scale(errorGain)))

	best := 0
	bestDist := uint32(math.MaxUint32)
	var bestResidual pixel.Vec3

	for i := range t.entries {
		residual := trial.Sub(t.entries[i].Lab)
		// Fixed-point distance keeps the ordering stable across
		// platforms and float rounding.
		d := uint32(residual.Len() * 255)
		if d < bestDist {
			best, bestDist, bestResidual = i, d, residual
		}
	}

	return t.entries[best].RGB, bestResidual
}

func toLab(c pixel.RGB) pixel.Vec3 {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	// go-colorful scales L*a*b* down by 100
	return pixel.Vec3{l * 100, a * 100, b * 100}
}

// clampLab keeps an error-shifted point inside the meaningful Lab
// gamut, L in [0,100] and a/b in [-128,127], so accumulated error can
// never push the search point off into nowhere.
func clampLab(v pixel.Vec3) pixel.Vec3 {
	v[0] = clamp(v[0], 0, 100)
	v[1] = clamp(v[1], -128, 127)
	v[2] = clamp(v[2], -128, 127)
	return v
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
