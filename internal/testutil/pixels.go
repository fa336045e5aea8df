// Package testutil provides pixel generators and buffer comparisons shared
// by the raster tests.
package testutil

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomPixels returns width*height random RGBA pixels.
func RandomPixels(rng *rand.Rand, width, height int) []byte {
	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = byte(rng.UintN(256))
	}
	return pix
}

// RandomAlphaPixels is RandomPixels with alpha biased towards the blend
// fast paths: a quarter transparent, a quarter opaque, the rest random.
func RandomAlphaPixels(rng *rand.Rand, width, height int) []byte {
	pix := RandomPixels(rng, width, height)
	for i := 3; i < len(pix); i += 4 {
		switch rng.IntN(4) {
		case 0:
			pix[i] = 0
		case 1:
			pix[i] = 255
		}
	}
	return pix
}

// Coordinates returns width*height pixels where pixel (x, y) encodes its own
// position: R=x, G=y, B=x>>8, A=y>>8. Handy for checking which source pixel
// a resize or blit picked.
func Coordinates(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * 4
			pix[o] = byte(x)
			pix[o+1] = byte(y)
			pix[o+2] = byte(x >> 8)
			pix[o+3] = byte(y >> 8)
		}
	}
	return pix
}

// Pixel returns the 4 bytes of pixel (x, y).
func Pixel(pix []byte, width, x, y int) [4]byte {
	o := (y*width + x) * 4
	return [4]byte{pix[o], pix[o+1], pix[o+2], pix[o+3]}
}

// Clone returns a copy of pix.
func Clone(pix []byte) []byte {
	return append([]byte(nil), pix...)
}

// RequirePixelsEqual fails t at the first pixel where got and want differ,
// reporting its (x, y) for an image of the given width.
func RequirePixelsEqual(t testing.TB, got, want []byte, width int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if bytes.Equal(got, want) {
		return
	}
	for i := 0; i < len(got); i += 4 {
		if !bytes.Equal(got[i:i+4], want[i:i+4]) {
			p := i / 4
			t.Fatalf("pixel (%d,%d): got %v, want %v", p%width, p/width, got[i:i+4], want[i:i+4])
		}
	}
}
