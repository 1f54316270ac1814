package c64conv

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/retrobit/c64conv/pixel"
)

// ConvertFile decodes src, runs the pipeline and writes the result to
// dst as PNG, creating the destination directory as needed.
func (c *Converter) ConvertFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	b, err := pixel.FromImage(c.preprocess(m))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	if err := c.Process(b); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := png.Encode(out, b.Image()); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", dst, err)
	}

	return out.Close()
}

func (c *Converter) preprocess(m image.Image) image.Image {
	if c.config.Width > 0 || c.config.Height > 0 {
		width, height := c.config.Width, c.config.Height
		if width == 0 {
			width = ScreenWidth
		}
		if height == 0 {
			height = ScreenHeight
		}
		m = resize.Thumbnail(width, height, m, resize.Lanczos3)
	}

	if c.config.Gamma > 0 {
		m = imaging.AdjustGamma(m, c.config.Gamma)
	}
	if c.config.Brightness != 0 {
		m = imaging.AdjustBrightness(m, c.config.Brightness)
	}
	if c.config.Contrast != 0 {
		m = imaging.AdjustContrast(m, c.config.Contrast)
	}

	if n := c.config.Colors; n > 1 {
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, n), m))
		draw.Draw(pm, m.Bounds(), m, m.Bounds().Min, draw.Src)
		m = pm
	}

	return m
}
