/*
Package tile enforces the per-tile color budget. The screen is split
into non-overlapping 8 by 8 tiles and each tile may use at most 4
distinct colors; any tile over budget has its least used colors merged
into the most used one until it fits.
*/
package tile

import (
	"sort"

	"github.com/retrobit/c64conv/pixel"
)

const (
	// Width and Height of one tile in pixels.
	Width  = 8
	Height = Width

	// MaxColors is the hardware budget of distinct colors per tile.
	MaxColors = 4
)

type point struct {
	x, y int
}

type group struct {
	count  int
	color  pixel.RGB
	points []point
}

// Reduce brings every full tile of b within the color budget, mutating
// b in place. Pixels outside the last full multiple of 8 in either
// dimension are not part of any tile and stay untouched. Tiles are
// independent, so Reduce is idempotent.
func Reduce(b *pixel.Buffer) {
	for ty := 0; ty < b.Height/Height; ty++ {
		for tx := 0; tx < b.Width/Width; tx++ {
			reduce(b, tx*Width, ty*Height)
		}
	}
}

// reduce repaints the tile at (ox, oy) until it holds no more than
// MaxColors distinct colors. Greedy majority absorption: the smallest
// group is repainted with the current biggest group's color, not with
// the perceptually nearest one. Crude, but output compatibility hinges
// on this exact merge order.
func reduce(b *pixel.Buffer, ox, oy int) {
	// Group the tile's pixels by color. First appearance in raster
	// order decides the initial group order, which keeps the later
	// tie-breaking deterministic.
	var groups []group
	index := make(map[pixel.RGB]int)
	for y := oy; y < oy+Height; y++ {
		for x := ox; x < ox+Width; x++ {
			c := b.At(x, y)
			i, ok := index[c]
			if !ok {
				i = len(groups)
				index[c] = i
				groups = append(groups, group{color: c})
			}
			groups[i].count++
			groups[i].points = append(groups[i].points, point{x, y})
		}
	}

	for len(groups) > MaxColors {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].count > groups[j].count
		})

		last := groups[len(groups)-1]
		groups = groups[:len(groups)-1]

		for _, p := range last.points {
			b.Set(p.x, p.y, groups[0].color)
		}
		groups[0].count += last.count
	}
}
