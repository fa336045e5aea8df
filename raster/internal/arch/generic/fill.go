package generic

// Fill writes (r, g, b, a) to every pixel of a width x height buffer.
// This is the pure Go fallback implementation.
func Fill(pix []byte, width, height int, r, g, b, a uint8) {
	FillPixels(pix[:width*height*4], r, g, b, a)
}

// FillPixels writes (r, g, b, a) to each 4-byte pixel in pix. The vector
// variants use it for their remainder.
func FillPixels(pix []byte, r, g, b, a uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}
