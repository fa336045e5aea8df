package raster

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-rgba/internal/testutil"
)

// benchSizes are the frame sizes the throughput tool reports on.
var benchSizes = [][2]int{{64, 64}, {640, 480}, {1920, 1080}}

func BenchmarkFill(b *testing.B) {
	for _, k := range Variants() {
		for _, s := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", k.Name(), s[0], s[1]), func(b *testing.B) {
				pix := make([]byte, s[0]*s[1]*4)
				b.SetBytes(int64(len(pix)))
				b.ReportAllocs()
				for b.Loop() {
					_ = k.Fill(pix, s[0], s[1], LightBlue)
				}
			})
		}
	}
}

func BenchmarkBlend(b *testing.B) {
	rng := testutil.NewRand(7)
	for _, k := range Variants() {
		for _, s := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", k.Name(), s[0], s[1]), func(b *testing.B) {
				bg := testutil.RandomPixels(rng, s[0], s[1])
				ov := testutil.RandomAlphaPixels(rng, s[0], s[1])
				b.SetBytes(int64(len(bg)))
				b.ReportAllocs()
				for b.Loop() {
					_ = k.Blend(bg, ov, s[0], s[1], s[0], s[1], 0, 0)
				}
			})
		}
	}
}

func BenchmarkBlit(b *testing.B) {
	rng := testutil.NewRand(8)
	for _, k := range Variants() {
		for _, s := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", k.Name(), s[0], s[1]), func(b *testing.B) {
				dst := make([]byte, s[0]*s[1]*4)
				src := testutil.RandomPixels(rng, s[0]/2, s[1]/2)
				b.SetBytes(int64(len(src)))
				b.ReportAllocs()
				for b.Loop() {
					_ = k.Blit(dst, s[0], s[1], src, s[0]/2, s[1]/2, s[0]/4, s[1]/4)
				}
			})
		}
	}
}

func BenchmarkBlitSameSize(b *testing.B) {
	for _, s := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			src := make([]byte, s[0]*s[1]*4)
			dst := make([]byte, len(src))
			b.SetBytes(int64(len(src)))
			for b.Loop() {
				_ = BlitSameSize(dst, src, s[0], s[1], 4)
			}
		})
	}
}

func BenchmarkResize(b *testing.B) {
	rng := testutil.NewRand(9)
	src := testutil.RandomPixels(rng, 1920, 1080)
	dst := make([]byte, 1280*720*4)

	for _, policy := range []ResizePolicy{FixedPoint, FloatingPoint} {
		for _, k := range Variants() {
			b.Run(fmt.Sprintf("%s/%s/1920x1080-1280x720", k.Name(), policy), func(b *testing.B) {
				b.SetBytes(int64(len(dst)))
				b.ReportAllocs()
				for b.Loop() {
					_ = k.ResizeWith(policy, dst, src, 1920, 1080, 1280, 720)
				}
			})
		}
	}
}
