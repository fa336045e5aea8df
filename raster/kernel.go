package raster

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-rgba/raster/internal/arch/generic"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/narrow"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/wide"
)

// ResizePolicy selects the nearest-neighbour sampling formula.
type ResizePolicy = registry.ResizePolicy

const (
	// FixedPoint samples floor(x * ((src<<16)/dst) >> 16), an unbiased
	// 16.16 ratio.
	FixedPoint = registry.FixedPoint

	// FloatingPoint samples int(x * float32(src)/float32(dst)) in single
	// precision, clamped to the last source pixel. It may pick different pixels than FixedPoint.
	FloatingPoint = registry.FloatingPoint
)

// Filler writes a constant colour to a buffer.
type Filler interface {
	Fill(pix []byte, width, height int, c Color) error
}

// Blender composites an overlay onto a background in place.
type Blender interface {
	Blend(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int) error
}

// Blitter copies a source rectangle onto a destination without blending.
type Blitter interface {
	Blit(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int) error
}

// Resizer resamples one buffer into another.
type Resizer interface {
	Resize(dst, src []byte, srcW, srcH, dstW, dstH int) error
	ResizeWith(policy ResizePolicy, dst, src []byte, srcW, srcH, dstW, dstH int) error
}

// Kernel is one variant of all four kernel families. Kernels are values;
// the kernel methods of the zero Kernel return ErrUnknownVariant.
type Kernel struct {
	entry registry.OpEntry
}

var (
	_ Filler  = Kernel{}
	_ Blender = Kernel{}
	_ Blitter = Kernel{}
	_ Resizer = Kernel{}
)

// Portable returns the scalar kernels.
func Portable() Kernel {
	return Kernel{entry: generic.Entry()}
}

// Wide returns the 8-pixel group kernels. They run on every architecture;
// only their speed depends on the CPU.
func Wide() Kernel {
	return Kernel{entry: wide.Entry()}
}

// Narrow returns the 4-pixel group kernels.
func Narrow() Kernel {
	return Kernel{entry: narrow.Entry()}
}

// Variants returns Portable, Wide and Narrow, in that order.
func Variants() []Kernel {
	return []Kernel{Portable(), Wide(), Narrow()}
}

// Name identifies the variant ("generic", "wide", "narrow", or the name a
// backend registered under, such as "avx2").
func (k Kernel) Name() string {
	return k.entry.Name
}

// Lanes returns the number of pixels the variant processes per group.
func (k Kernel) Lanes() int {
	return k.entry.Lanes
}

// Level returns the instruction set the variant was registered for.
func (k Kernel) Level() string {
	return k.entry.SIMDLevel.String()
}

// String implements fmt.Stringer.
func (k Kernel) String() string {
	return fmt.Sprintf("%s(%d lanes, %s)", k.entry.Name, k.entry.Lanes, k.Level())
}

// Fill writes c to all width*height pixels of pix.
func (k Kernel) Fill(pix []byte, width, height int, c Color) error {
	if !k.usable() {
		return fmt.Errorf("fill: %w", ErrUnknownVariant)
	}
	if pix == nil {
		logNilBuffer("fill", "pix")
		return fmt.Errorf("fill: %w", ErrNilBuffer)
	}
	if err := checkBuffer(pix, width, height, "pix"); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if width == 0 || height == 0 {
		logDegenerate("fill", width, height)
		return nil
	}

	k.entry.Fill(pix, width, height, c.R, c.G, c.B, c.A)
	return nil
}

// Blend composites ov (ovW x ovH) over bg (bgW x bgH) with ov's top-left
// at (x, y) in bg coordinates. Overlay pixels that land outside bg are
// skipped. See generic.Blend for the exact arithmetic.
func (k Kernel) Blend(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int) error {
	if !k.usable() {
		return fmt.Errorf("blend: %w", ErrUnknownVariant)
	}
	if bg == nil || ov == nil {
		logNilBuffer("blend", nilName(bg, ov, "bg", "ov"))
		return fmt.Errorf("blend: %w", ErrNilBuffer)
	}
	if err := checkBuffer(bg, bgW, bgH, "bg"); err != nil {
		return fmt.Errorf("blend: %w", err)
	}
	if err := checkBuffer(ov, ovW, ovH, "ov"); err != nil {
		return fmt.Errorf("blend: %w", err)
	}

	k.entry.Blend(bg, ov, bgW, bgH, ovW, ovH, x, y)
	return nil
}

// Blit overwrites the part of dst covered by src placed at (x, y). Pixels
// outside the intersection are not touched.
func (k Kernel) Blit(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int) error {
	if !k.usable() {
		return fmt.Errorf("blit: %w", ErrUnknownVariant)
	}
	if dst == nil || src == nil {
		logNilBuffer("blit", nilName(dst, src, "dst", "src"))
		return fmt.Errorf("blit: %w", ErrNilBuffer)
	}
	if err := checkBuffer(dst, dstW, dstH, "dst"); err != nil {
		return fmt.Errorf("blit: %w", err)
	}
	if err := checkBuffer(src, srcW, srcH, "src"); err != nil {
		return fmt.Errorf("blit: %w", err)
	}

	k.entry.Blit(dst, dstW, dstH, src, srcW, srcH, x, y)
	return nil
}

// Resize resamples src into dst with the FixedPoint policy.
func (k Kernel) Resize(dst, src []byte, srcW, srcH, dstW, dstH int) error {
	return k.ResizeWith(FixedPoint, dst, src, srcW, srcH, dstW, dstH)
}

// ResizeWith resamples src (srcW x srcH) into dst (dstW x dstH) with
// nearest-neighbour sampling under policy. Any zero dimension is a no-op.
func (k Kernel) ResizeWith(policy ResizePolicy, dst, src []byte, srcW, srcH, dstW, dstH int) error {
	if !k.usable() {
		return fmt.Errorf("resize: %w", ErrUnknownVariant)
	}
	if dst == nil || src == nil {
		logNilBuffer("resize", nilName(dst, src, "dst", "src"))
		return fmt.Errorf("resize: %w", ErrNilBuffer)
	}
	if err := checkBuffer(src, srcW, srcH, "src"); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if err := checkBuffer(dst, dstW, dstH, "dst"); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if srcW == 0 || srcH == 0 || dstW == 0 || dstH == 0 {
		logDegenerate("resize", srcW, srcH, dstW, dstH)
		return nil
	}

	k.entry.Resize(dst, src, srcW, srcH, dstW, dstH, policy)
	return nil
}

// BlitSameSize copies width*height*channels bytes from src to dst. It does
// not interpret pixels, so any channel count works.
func BlitSameSize(dst, src []byte, width, height, channels int) error {
	if dst == nil || src == nil {
		logNilBuffer("blit_same_size", nilName(dst, src, "dst", "src"))
		return fmt.Errorf("blit_same_size: %w", ErrNilBuffer)
	}
	if channels < 1 {
		return fmt.Errorf("blit_same_size: %w: %d", ErrChannels, channels)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("blit_same_size: %w: %dx%d", ErrInvalidDimensions, width, height)
	}

	px, err := BufferSize(width, height)
	if err != nil {
		return fmt.Errorf("blit_same_size: %w", err)
	}
	hi, total := bits.Mul64(uint64(px/4), uint64(channels))
	if hi != 0 || total > uint64(math.MaxInt) {
		return fmt.Errorf("blit_same_size: %w: %dx%dx%d", ErrSizeOverflow, width, height, channels)
	}
	n := int(total)
	if len(dst) < n || len(src) < n {
		return fmt.Errorf("blit_same_size: %w: need %d bytes, dst %d, src %d",
			ErrBufferTooSmall, n, len(dst), len(src))
	}

	copy(dst[:n], src[:n])
	return nil
}

func (k Kernel) usable() bool {
	e := &k.entry
	return e.Fill != nil && e.Blend != nil && e.Blit != nil && e.Resize != nil
}

// checkBuffer validates that pix can hold width x height RGBA pixels.
func checkBuffer(pix []byte, width, height int, name string) error {
	n, err := BufferSize(width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(pix) < n {
		return fmt.Errorf("%w: %s is %d bytes, %dx%d needs %d",
			ErrBufferTooSmall, name, len(pix), width, height, n)
	}
	return nil
}

func nilName(a, b []byte, an, bn string) string {
	switch {
	case a == nil && b == nil:
		return an + "," + bn
	case a == nil:
		return an
	default:
		return bn
	}
}
