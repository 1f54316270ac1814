/*
Package pixel provides the raw pixel types used by the conversion
pipeline; a byte RGB triple, a float color vector and a mutable
row-major pixel buffer.
*/
package pixel

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrNotRGB is returned when an image cannot be represented as opaque
// byte RGB triples.
var ErrNotRGB = errors.New("pixel: image is not representable as opaque RGB")

// RGB is a byte RGB triple. It is comparable and usable as a map key.
type RGB struct {
	R, G, B uint8
}

// Vec3 is a three channel float color. Depending on context it holds
// either normalized RGB or Lab values.
type Vec3 [3]float64

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Buffer is a width by height grid of RGB pixels stored in row-major
// order. It is mutated in place by every pipeline stage and is owned by
// a single conversion at a time.
type Buffer struct {
	Width, Height int
	Pix           []RGB
}

// NewBuffer returns a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (b *Buffer) At(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

func (b *Buffer) Set(x, y int, c RGB) {
	b.Pix[y*b.Width+x] = c
}

// FromImage copies m into a new buffer. It fails with ErrNotRGB if any
// pixel is not fully opaque as such an image has no byte RGB
// representation.
func FromImage(m image.Image) (*Buffer, error) {
	bounds := m.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, a := m.At(x, y).RGBA()
			if a != 0xffff {
				return nil, ErrNotRGB
			}
			b.Set(x-bounds.Min.X, y-bounds.Min.Y, RGB{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
	return b, nil
}

// Image returns the buffer as a standard image suitable for encoding.
func (b *Buffer) Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			m.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return m
}
