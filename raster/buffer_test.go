package raster

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferAligned(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {8, 8}, {640, 480}, {1023, 1}} {
		b, err := NewBuffer(dims[0], dims[1])
		require.NoError(t, err)
		assert.Len(t, b.Pix, dims[0]*dims[1]*4)
		assert.True(t, IsAligned(b.Pix), "%dx%d not %d-byte aligned", dims[0], dims[1], Alignment)
		assert.Equal(t, dims[0]*4, b.Stride())
	}
}

func TestNewBufferZeroArea(t *testing.T) {
	b, err := NewBuffer(0, 10)
	require.NoError(t, err)
	assert.NotNil(t, b.Pix)
	assert.Empty(t, b.Pix)
}

func TestNewBufferRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          error
	}{
		{"negative-width", -1, 10, ErrInvalidDimensions},
		{"negative-height", 10, -1, ErrInvalidDimensions},
		{"product-overflow", math.MaxInt, math.MaxInt, ErrSizeOverflow},
		{"times-four-overflow", math.MaxInt / 2, 1, ErrSizeOverflow},
		{"over-cap", 1 << 20, 1 << 20, ErrSizeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(tt.width, tt.height)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBufferSize(t *testing.T) {
	n, err := BufferSize(1920, 1080)
	require.NoError(t, err)
	assert.Equal(t, 1920*1080*4, n)

	_, err = BufferSize(1<<17, 1<<17)
	assert.True(t, errors.Is(err, ErrSizeOverflow))
}

func TestBufferReleaseTwice(t *testing.T) {
	b, err := NewBuffer(4, 4)
	require.NoError(t, err)

	DefaultAllocator.Destroy(b)
	DefaultAllocator.Destroy(b)
	assert.Nil(t, b.Pix)
	assert.Zero(t, b.Width)

	var nilBuf *Buffer
	nilBuf.Release()
}

func TestBufferAtSet(t *testing.T) {
	b, err := NewBuffer(3, 2)
	require.NoError(t, err)

	c := Color{1, 2, 3, 4}
	b.Set(2, 1, c)
	assert.Equal(t, c, b.At(2, 1))
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Pix[20:24])
}

func TestBufferNRGBAView(t *testing.T) {
	b, err := NewBuffer(2, 2)
	require.NoError(t, err)

	img := b.NRGBA()
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	assert.Equal(t, Color{9, 8, 7, 6}, b.At(1, 1))
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(12, 11, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	b, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.True(t, IsAligned(b.Pix))
	assert.Equal(t, Color{200, 100, 50, 255}, b.At(2, 1))
}

func TestPoolReusesAndClears(t *testing.T) {
	p := NewPool(2)

	b, err := p.Create(4, 4)
	require.NoError(t, err)
	require.NoError(t, b.Fill(White))
	first := &b.Pix[0]

	p.Destroy(b)
	assert.Equal(t, 1, p.Len())

	again, err := p.Create(4, 4)
	require.NoError(t, err)
	assert.Same(t, first, &again.Pix[0])
	assert.Equal(t, Transparent, again.At(3, 3))
	assert.Zero(t, p.Len())
}

func TestPoolBucketLimit(t *testing.T) {
	p := NewPool(1)

	a, err := p.Create(2, 2)
	require.NoError(t, err)
	b, err := p.Create(2, 2)
	require.NoError(t, err)

	p.Destroy(a)
	p.Destroy(b)
	assert.Equal(t, 1, p.Len())
	assert.Nil(t, b.Pix, "buffer over the limit should be released")

	p.Destroy(nil)
	assert.Equal(t, 1, p.Len())
}

func TestPoolRejectsBadSizes(t *testing.T) {
	var alloc Allocator = NewPool(0)
	_, err := alloc.Create(-3, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
