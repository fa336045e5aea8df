package narrow

import "github.com/cwbudde/algo-rgba/raster/internal/arch/generic"

// u16x16 is one 4-pixel group deinterleaved into channel-major lanes:
// [0:4] red, [4:8] green, [8:12] blue, [12:16] alpha.
type u16x16 [16]uint16

// Blend composites ov over bg at (x, y). Groups are formed inside the
// clipped span of each row, then the tail goes through generic.BlendSpan.
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

func blendGroup(bg, ov *[groupBytes]byte) {
	a0, a1, a2, a3 := ov[3], ov[7], ov[11], ov[15]
	if a0|a1|a2|a3 == 0 {
		return
	}
	if a0&a1&a2&a3 == 0xff {
		*bg = *ov
		return
	}

	src := load(ov)
	dst := load(bg)

	var alpha, inv [Lanes]uint16
	for i := range Lanes {
		alpha[i] = src[12+i]
		inv[i] = 255 - alpha[i]
	}

	var out u16x16
	for c := 0; c < 12; c += Lanes {
		for i := range Lanes {
			out[c+i] = div255(src[c+i]*alpha[i] + dst[c+i]*inv[i])
		}
	}
	for i := range Lanes {
		out[12+i] = alpha[i] + div255(dst[12+i]*inv[i])
	}

	store(bg, &out)
}

// load widens a group to 16-bit channel-major lanes.
func load(p *[groupBytes]byte) u16x16 {
	var v u16x16
	for i := range Lanes {
		for c := range 4 {
			v[c*Lanes+i] = uint16(p[i*4+c])
		}
	}
	return v
}

// store narrows channel-major lanes back to interleaved RGBA bytes. Every
// lane holds a value <= 255.
func store(p *[groupBytes]byte, v *u16x16) {
	for i := range Lanes {
		for c := range 4 {
			p[i*4+c] = uint8(v[c*Lanes+i])
		}
	}
}

// div255 is v/255 for v < 65535; v+1+(v>>8) stays below 65536 for every
// product sum reachable here (max 255*255).
func div255(v uint16) uint16 {
	return (v + 1 + (v >> 8)) >> 8
}
