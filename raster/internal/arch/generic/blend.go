package generic

// Blend composites ov (ovW x ovH) over bg (bgW x bgH) with ov's top-left at
// (x, y). Pixels outside bg are clipped.
//
// For overlay alpha a:
//
//	a == 0   -> bg unchanged
//	a == 255 -> bg = ov
//	else     -> c = (ov.c*a + bg.c*(255-a)) / 255,  alpha = a + bg.a*(255-a)/255
//
// Division truncates; alpha is not premultiplied.
func Blend(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int) {
	r, ok := Intersect(bgW, bgH, ovW, ovH, x, y)
	if !ok {
		return
	}

	span := r.W * 4
	for i := 0; i < r.H; i++ {
		d, s := r.Rows(i, bgW, ovW)
		BlendSpan(bg[d:d+span], ov[s:s+span])
	}
}

// BlendSpan blends len(ov)/4 overlay pixels onto the same number of
// background pixels. Used directly as the remainder path of the vector
// variants.
func BlendSpan(bg, ov []byte) {
	for i := 0; i+3 < len(ov); i += 4 {
		a := uint32(ov[i+3])
		switch a {
		case 0:
			continue
		case 255:
			copy(bg[i:i+4], ov[i:i+4])
			continue
		}

		inv := 255 - a
		bg[i] = uint8((uint32(ov[i])*a + uint32(bg[i])*inv) / 255)
		bg[i+1] = uint8((uint32(ov[i+1])*a + uint32(bg[i+1])*inv) / 255)
		bg[i+2] = uint8((uint32(ov[i+2])*a + uint32(bg[i+2])*inv) / 255)
		bg[i+3] = uint8(a + uint32(bg[i+3])*inv/255)
	}
}
