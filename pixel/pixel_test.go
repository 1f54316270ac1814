package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAtSet(t *testing.T) {
	b := NewBuffer(4, 3)

	assert.Equal(t, RGB{}, b.At(2, 1))

	c := RGB{R: 1, G: 2, B: 3}
	b.Set(2, 1, c)
	assert.Equal(t, c, b.At(2, 1))
	assert.Equal(t, RGB{}, b.At(1, 2))
}

func TestFromImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 10), uint8(y * 20), uint8(x + y), 0xff})
		}
	}

	b, err := FromImage(m)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, RGB{R: 20, G: 20, B: 3}, b.At(2, 1))
}

func TestFromImageOffsetBounds(t *testing.T) {
	m := image.NewNRGBA(image.Rect(2, 3, 5, 6))
	m.SetNRGBA(2, 3, color.NRGBA{0xaa, 0xbb, 0xcc, 0xff})
	for y := 3; y < 6; y++ {
		for x := 2; x < 5; x++ {
			c := m.NRGBAAt(x, y)
			c.A = 0xff
			m.SetNRGBA(x, y, c)
		}
	}

	b, err := FromImage(m)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.Equal(t, RGB{R: 0xaa, G: 0xbb, B: 0xcc}, b.At(0, 0))
}

func TestFromImageNotOpaque(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			m.SetNRGBA(x, y, color.NRGBA{1, 2, 3, 0xff})
		}
	}
	m.SetNRGBA(1, 1, color.NRGBA{1, 2, 3, 0x80})

	_, err := FromImage(m)
	assert.ErrorIs(t, err, ErrNotRGB)
}

func TestImageRoundTrip(t *testing.T) {
	b := NewBuffer(5, 4)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Set(x, y, RGB{uint8(x * 40), uint8(y * 60), uint8(x * y)})
		}
	}

	got, err := FromImage(b.Image())
	require.NoError(t, err)

	assert.Equal(t, b.Pix, got.Pix)
}
