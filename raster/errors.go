package raster

import "errors"

var (
	// ErrNilBuffer is returned when a required pixel buffer is nil.
	ErrNilBuffer = errors.New("raster: nil buffer")

	// ErrInvalidDimensions is returned for negative widths or heights.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrSizeOverflow is returned when width*height*4 overflows or exceeds
	// MaxBufferBytes.
	ErrSizeOverflow = errors.New("raster: buffer size overflow")

	// ErrBufferTooSmall is returned when a buffer is shorter than its
	// declared dimensions require.
	ErrBufferTooSmall = errors.New("raster: buffer too small for dimensions")

	// ErrChannels is returned when a channel count is less than 1.
	ErrChannels = errors.New("raster: invalid channel count")

	// ErrUnknownVariant is returned by Select for an unregistered name and by
	// the methods of the zero Kernel.
	ErrUnknownVariant = errors.New("raster: unknown kernel variant")
)
