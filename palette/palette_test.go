package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrobit/c64conv/pixel"
)

func TestNew(t *testing.T) {
	table := New()
	entries := table.Entries()

	require.Len(t, entries, 16)
	assert.Equal(t, Black, entries[0].RGB)
	assert.Equal(t, White, entries[1].RGB)
	assert.Equal(t, LightGrey, entries[15].RGB)

	// Black and white sit at the ends of the lightness axis and have no
	// chroma to speak of.
	assert.InDelta(t, 0, entries[0].Lab[0], 1e-6)
	assert.InDelta(t, 100, entries[1].Lab[0], 1e-6)
	assert.InDelta(t, 0, entries[1].Lab[1], 1e-3)
	assert.InDelta(t, 0, entries[1].Lab[2], 1e-3)
}

func TestMatchExactPaletteColor(t *testing.T) {
	table := New()

	for _, e := range table.Entries() {
		got, residual := table.Match(e.RGB, pixel.Vec3{})
		assert.Equal(t, e.RGB, got)
		for i := range residual {
			assert.InDelta(t, 0, residual[i], 1e-9)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	table := New()

	c := pixel.RGB{R: 12, G: 200, B: 100}
	errIn := pixel.Vec3{3.5, -2, 0.25}

	c1, r1 := table.Match(c, errIn)
	c2, r2 := table.Match(c, errIn)

	assert.Equal(t, c1, c2)
	assert.Equal(t, r1, r2)
}

func TestMatchReturnsPaletteColor(t *testing.T) {
	table := New()

	members := make(map[pixel.RGB]struct{})
	for _, e := range table.Entries() {
		members[e.RGB] = struct{}{}
	}

	errs := []pixel.Vec3{
		{},
		{10, -10, 5},
		{500, 500, 500},
		{-500, -500, -500},
	}

	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				for _, errIn := range errs {
					got, _ := table.Match(pixel.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, errIn)
					_, ok := members[got]
					require.True(t, ok, "%v is not a palette color", got)
				}
			}
		}
	}
}

func TestMatchClampsRunawayError(t *testing.T) {
	table := New()

	got, residual := table.Match(pixel.RGB{R: 128, G: 128, B: 128}, pixel.Vec3{1e6, 1e6, 1e6})

	// The clamp caps the trial point at the corner of the gamut, so the
	// result is still a palette color and the residual stays bounded by
	// the gamut size instead of running away with the error.
	members := make(map[pixel.RGB]struct{})
	for _, e := range table.Entries() {
		members[e.RGB] = struct{}{}
	}
	_, ok := members[got]
	assert.True(t, ok)
	for i := range residual {
		assert.Less(t, residual[i], 300.0)
		assert.Greater(t, residual[i], -300.0)
	}
}
