/*
Package dither implements the multicolor mode raster passes; an error
diffusion dither against the fixed palette, the horizontal pixel pair
fix and an optional scanline smoothing pass.
*/
package dither

import (
	"github.com/retrobit/c64conv/palette"
	"github.com/retrobit/c64conv/pixel"
)

// Half of the carried error decays away with every matched pixel. Not a
// true Floyd-Steinberg carry, but the smoother result is the point.
const errorDecay = 0.5

// Dither walks b row by row and replaces every even column with its
// closest palette color, carrying the quantization error left to right
// within the row. Odd columns are skipped; the pair fix overwrites them
// anyway and diffusing error into them would count it twice.
func Dither(b *pixel.Buffer, t *palette.Table) {
	for y := 0; y < b.Height; y++ {
		var carry pixel.Vec3
		for x := 0; x < b.Width; x += 2 {
			c, residual := t.Match(b.At(x, y), carry)
			b.Set(x, y, c)
			carry = carry.Add(residual).Scale(errorDecay)
		}
	}
}

// Pair copies every even column into its odd neighbour, giving the
// double-wide multicolor pixels. A trailing odd-width column has no
// partner and is left alone.
func Pair(b *pixel.Buffer) {
	for y := 0; y < b.Height; y++ {
		for x := 1; x < b.Width; x += 2 {
			b.Set(x, y, b.At(x-1, y))
		}
	}
}

// Smooth fills a pixel pair with its horizontal neighbour pairs' color
// on every other pair of rows, whenever both neighbour pairs agree. It
// softens the stripe artifacts the row-local error carry tends to
// produce. Smooth expects a paired image and writes whole pairs, so
// the pairing stays intact, but it copies colors across tile
// boundaries and therefore must run before tile reduction.
func Smooth(b *pixel.Buffer) {
	for y := 2; y < b.Height-2; y++ {
		if (y/2)%2 == 0 {
			continue
		}
		for x := 2; x+2 < b.Width; x += 2 {
			left, right := b.At(x-2, y), b.At(x+2, y)
			if left == right {
				b.Set(x, y, left)
				b.Set(x+1, y, left)
			}
		}
	}
}
