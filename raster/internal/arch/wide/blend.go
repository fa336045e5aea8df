package wide

import (
	"encoding/binary"

	"github.com/cwbudde/algo-rgba/raster/internal/arch/generic"
)

// u32x8 holds one 32-bit lane per pixel of a group.
type u32x8 [Lanes]uint32

// Blend composites ov over bg at (x, y) with the same truncating integer
// formula as generic.Blend. Clipping is resolved per row before grouping,
// so a group never straddles the background edge and every in-bounds
// pixel is written exactly as the scalar path would.
func Blend(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int) {
	r, ok := generic.Intersect(bgW, bgH, ovW, ovH, x, y)
	if !ok {
		return
	}

	blocks := r.W / Lanes
	span := r.W * 4
	for i := 0; i < r.H; i++ {
		d, s := r.Rows(i, bgW, ovW)
		bgRow := bg[d : d+span]
		ovRow := ov[s : s+span]

		for k := 0; k < blocks; k++ {
			o := k * groupBytes
			blendGroup((*[groupBytes]byte)(bgRow[o:]), (*[groupBytes]byte)(ovRow[o:]))
		}

		rem := blocks * groupBytes
		generic.BlendSpan(bgRow[rem:], ovRow[rem:])
	}
}

// blendGroup blends 8 packed pixels. Channels are pulled out of the packed
// little-endian words by mask and shift. The lane formula reduces to the
// scalar fast paths at a == 0 and a == 255, so lanes need no branches.
func blendGroup(bg, ov *[groupBytes]byte) {
	var src, dst u32x8
	for i := range Lanes {
		src[i] = binary.LittleEndian.Uint32(ov[i*4:])
		dst[i] = binary.LittleEndian.Uint32(bg[i*4:])
	}

	var anyAlpha, allAlpha uint32 = 0, 0xff
	for i := range Lanes {
		a := src[i] >> 24
		anyAlpha |= a
		allAlpha &= a
	}
	switch {
	case anyAlpha == 0:
		return
	case allAlpha == 0xff:
		*bg = *ov
		return
	}

	var alpha, inv u32x8
	for i := range Lanes {
		alpha[i] = src[i] >> 24
		inv[i] = 255 - alpha[i]
	}

	var out u32x8
	for shift := uint32(0); shift < 24; shift += 8 {
		var c u32x8
		for i := range Lanes {
			c[i] = div255((src[i]>>shift&0xff)*alpha[i] + (dst[i]>>shift&0xff)*inv[i])
		}
		for i := range Lanes {
			out[i] |= c[i] << shift
		}
	}
	for i := range Lanes {
		out[i] |= (alpha[i] + div255((dst[i]>>24)*inv[i])) << 24
	}

	for i := range Lanes {
		binary.LittleEndian.PutUint32(bg[i*4:], out[i])
	}
}

// div255 is v/255 for v < 65535, which covers every product sum here
// (max 255*255).
func div255(v uint32) uint32 {
	return (v + 1 + (v >> 8)) >> 8
}
