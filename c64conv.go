/*
Package c64conv converts raster images into pictures that obey the C64
multicolor mode constraints; every pixel comes from the fixed 16 color
palette, two horizontally adjacent pixels share one color and every 8
by 8 tile uses at most 4 distinct colors.
*/
package c64conv

import (
	"log"
	"runtime"

	"github.com/retrobit/c64conv/dither"
	"github.com/retrobit/c64conv/palette"
	"github.com/retrobit/c64conv/pixel"
	"github.com/retrobit/c64conv/tile"
)

// The multicolor bitmap screen dimensions, used as the default fit box
// when resizing is requested without explicit dimensions.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
)

// Config controls the optional preprocessing ahead of the conversion
// pipeline and the batch fan-out. The zero value disables all
// preprocessing and picks a worker per CPU.
type Config struct {
	// Width and Height describe a bounding box the source image is
	// scaled down to fit, preserving aspect ratio. Zero for both
	// disables resizing; zero for one of them substitutes the C64
	// screen dimension.
	Width, Height uint

	// Colors, when above one, pre-quantizes the source to that many
	// colors with a median cut before the palette projection. Useful
	// to tame sensor noise in photos; the output palette is the fixed
	// 16 colors either way.
	Colors int

	// Gamma, Brightness and Contrast are applied in that order before
	// conversion. Zero leaves the image alone.
	Gamma      float64
	Brightness float64
	Contrast   float64

	// Smooth enables the scanline smoothing pass between the pair fix
	// and the tile reduction.
	Smooth bool

	// Workers is the number of concurrent conversions in a batch.
	Workers int
}

// Converter converts images. The palette table inside it is read-only,
// so one Converter is safe to use from all batch workers at once.
type Converter struct {
	config  Config
	palette *palette.Table
	logger  *log.Logger
}

func New(config Config, logger *log.Logger) *Converter {
	if config.Workers < 1 {
		config.Workers = runtime.NumCPU()
	}
	return &Converter{
		config:  config,
		palette: palette.New(),
		logger:  logger,
	}
}

// Process runs the conversion pipeline over b in place; dither, pair
// fix, optional smoothing, tile reduction, strictly in that order. The
// stages are total over any well-formed buffer; the error return only
// exists for the interface with the decode layer.
func (c *Converter) Process(b *pixel.Buffer) error {
	dither.Dither(b, c.palette)
	dither.Pair(b)
	if c.config.Smooth {
		dither.Smooth(b)
	}
	tile.Reduce(b)
	return nil
}
