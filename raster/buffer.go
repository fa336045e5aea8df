package raster

import (
	"fmt"
	"image"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/image/draw"
)

// Alignment is the byte boundary of Buffer.Pix[0] for buffers created by
// HeapAllocator and Pool. It matches one 256-bit (8-pixel) vector.
const Alignment = 32

// MaxBufferBytes caps a single allocation. Requests above it fail with
// ErrSizeOverflow instead of reaching the runtime allocator, where failure
// is fatal.
const MaxBufferBytes uint64 = 1 << 34

// Buffer is a width x height RGBA pixel buffer with stride Width*4.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// Allocator creates and releases pixel buffers.
type Allocator interface {
	// Create returns a zeroed width x height buffer or an error; it never
	// panics on bad sizes.
	Create(width, height int) (*Buffer, error)

	// Destroy releases b. b must not be used afterwards.
	Destroy(b *Buffer)
}

// HeapAllocator allocates aligned buffers on the Go heap.
type HeapAllocator struct{}

// DefaultAllocator is used by NewBuffer.
var DefaultAllocator Allocator = HeapAllocator{}

// Create allocates a 32-byte aligned width x height buffer.
func (HeapAllocator) Create(width, height int) (*Buffer, error) {
	n, err := BufferSize(width, height)
	if err != nil {
		return nil, err
	}

	return &Buffer{Pix: alignedBytes(n), Width: width, Height: height}, nil
}

// Destroy drops the buffer's memory; the garbage collector reclaims it.
func (HeapAllocator) Destroy(b *Buffer) {
	b.Release()
}

// NewBuffer allocates a buffer with DefaultAllocator.
func NewBuffer(width, height int) (*Buffer, error) {
	return DefaultAllocator.Create(width, height)
}

// BufferSize returns width*height*4, or ErrInvalidDimensions for negative
// sizes and ErrSizeOverflow when the product overflows or exceeds
// MaxBufferBytes.
func BufferSize(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	hi, px := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || px > MaxBufferBytes/4 || px*4 > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	return int(px * 4), nil
}

// alignedBytes over-allocates by Alignment-1 and returns the aligned
// window. The window keeps the backing array alive.
func alignedBytes(n int) []byte {
	raw := make([]byte, n+Alignment-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((Alignment - addr%Alignment) % Alignment)
	return raw[off : off+n : off+n]
}

// IsAligned reports whether pix starts on an Alignment boundary.
func IsAligned(pix []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(pix)))%Alignment == 0
}

// Release drops the pixel memory and zeroes the dimensions. Calling it
// twice is harmless.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.Pix = nil
	b.Width, b.Height = 0, 0
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.Width * 4
}

// At returns pixel (x, y). It panics if the point is out of bounds.
func (b *Buffer) At(x, y int) Color {
	o := (y*b.Width + x) * 4
	p := b.Pix[o : o+4 : o+4]
	return Color{p[0], p[1], p[2], p[3]}
}

// Set writes pixel (x, y). It panics if the point is out of bounds.
func (b *Buffer) Set(x, y int, c Color) {
	o := (y*b.Width + x) * 4
	p := b.Pix[o : o+4 : o+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// NRGBA returns an image view sharing b's memory, for encoders and other
// image.Image consumers.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage copies img into a new aligned buffer, converting to
// non-premultiplied RGBA.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	dst := b.NRGBA()
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return b, nil
}
