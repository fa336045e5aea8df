package wide

import "github.com/cwbudde/algo-rgba/raster/internal/arch/generic"

// Fill writes (r, g, b, a) to all width*height pixels, 8 pixels per store,
// then finishes total%8 pixels with the scalar loop.
func Fill(pix []byte, width, height int, r, g, b, a uint8) {
	total := width * height
	blocks := total / Lanes

	var pattern [groupBytes]byte
	for i := 0; i < groupBytes; i += 4 {
		pattern[i] = r
		pattern[i+1] = g
		pattern[i+2] = b
		pattern[i+3] = a
	}

	for i := 0; i < blocks; i++ {
		*(*[groupBytes]byte)(pix[i*groupBytes:]) = pattern
	}

	generic.FillPixels(pix[blocks*groupBytes:total*4], r, g, b, a)
}
