package raster

import "fmt"

// Fill writes c to every pixel of b using Best.
func (b *Buffer) Fill(c Color) error {
	pix, w, h := b.view()
	return Fill(pix, w, h, c)
}

// Blend composites ov over b with ov's top-left at (x, y) using Best.
func (b *Buffer) Blend(ov *Buffer, x, y int) error {
	bg, bw, bh := b.view()
	op, ow, oh := ov.view()
	return Blend(bg, op, bw, bh, ow, oh, x, y)
}

// Blit copies src onto b at (x, y) using Best.
func (b *Buffer) Blit(src *Buffer, x, y int) error {
	dst, dw, dh := b.view()
	sp, sw, sh := src.view()
	return Blit(dst, dw, dh, sp, sw, sh, x, y)
}

// ResizeFrom resamples src into b using Best and FixedPoint sampling.
func (b *Buffer) ResizeFrom(src *Buffer) error {
	dst, dw, dh := b.view()
	sp, sw, sh := src.view()
	return Resize(dst, sp, sw, sh, dw, dh)
}

// CopyFrom copies src into b; both must have the same dimensions.
func (b *Buffer) CopyFrom(src *Buffer) error {
	dst, dw, dh := b.view()
	sp, sw, sh := src.view()
	if sw != dw || sh != dh {
		return fmt.Errorf("copy: %w: %dx%d into %dx%d", ErrInvalidDimensions, sw, sh, dw, dh)
	}
	return BlitSameSize(dst, sp, dw, dh, 4)
}

// FillGradient paints b with a diagonal test gradient: red grows left to
// right, green top to bottom, blue is 128 and alpha grows towards the
// bottom-right corner.
func (b *Buffer) FillGradient() {
	w, h := b.Width, b.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, Color{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 128,
				A: uint8(255 * (x + y) / (w + h)),
			})
		}
	}
}

// view returns the kernel arguments for b; a nil Buffer reads as a nil
// slice so the kernels report ErrNilBuffer.
func (b *Buffer) view() (pix []byte, width, height int) {
	if b == nil {
		return nil, 0, 0
	}
	return b.Pix, b.Width, b.Height
}
