package raster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rgba/internal/testutil"
)

// candidates are the variants compared against Portable: the explicit
// vector variants plus every backend registered for this build.
func candidates() []Kernel {
	return append([]Kernel{Wide(), Narrow()}, Registered()...)
}

func TestVariantsMatchPortableFill(t *testing.T) {
	rng := testutil.NewRand(1)

	for range 50 {
		w, h := 1+rng.IntN(45), 1+rng.IntN(9)
		c := Color{uint8(rng.UintN(256)), uint8(rng.UintN(256)), uint8(rng.UintN(256)), uint8(rng.UintN(256))}

		want := make([]byte, w*h*4)
		require.NoError(t, Portable().Fill(want, w, h, c))

		for _, k := range candidates() {
			got := make([]byte, w*h*4)
			require.NoError(t, k.Fill(got, w, h, c))
			testutil.RequirePixelsEqual(t, got, want, w)
		}
	}
}

func TestVariantsMatchPortableBlend(t *testing.T) {
	rng := testutil.NewRand(2)

	for i := range 200 {
		bgW, bgH := 1+rng.IntN(37), 1+rng.IntN(11)
		ovW, ovH := 1+rng.IntN(29), 1+rng.IntN(9)
		x, y := rng.IntN(bgW+ovW)-ovW, rng.IntN(bgH+ovH)-ovH

		bg := testutil.RandomPixels(rng, bgW, bgH)
		ov := testutil.RandomAlphaPixels(rng, ovW, ovH)

		want := testutil.Clone(bg)
		require.NoError(t, Portable().Blend(want, ov, bgW, bgH, ovW, ovH, x, y))

		for _, k := range candidates() {
			t.Run(fmt.Sprintf("%d/%s", i, k.Name()), func(t *testing.T) {
				got := testutil.Clone(bg)
				require.NoError(t, k.Blend(got, ov, bgW, bgH, ovW, ovH, x, y))
				testutil.RequirePixelsEqual(t, got, want, bgW)
			})
		}
	}
}

// Every 8-bit input pair goes through the lane arithmetic of both vector
// variants.
func TestVariantsMatchPortableBlendExhaustive(t *testing.T) {
	const w = 256
	bg := make([]byte, w*256*4)
	ov := make([]byte, w*256*4)
	for a := 0; a < 256; a++ {
		for v := 0; v < w; v++ {
			o := (a*w + v) * 4
			bg[o], bg[o+1], bg[o+2], bg[o+3] = uint8(v), uint8(255-v), uint8(v/2), uint8(v)
			ov[o], ov[o+1], ov[o+2], ov[o+3] = uint8(255-v), uint8(v), uint8(a), uint8(a)
		}
	}

	want := testutil.Clone(bg)
	require.NoError(t, Portable().Blend(want, ov, w, 256, w, 256, 0, 0))

	for _, k := range candidates() {
		got := testutil.Clone(bg)
		require.NoError(t, k.Blend(got, ov, w, 256, w, 256, 0, 0))
		testutil.RequirePixelsEqual(t, got, want, w)
	}
}

func TestVariantsMatchPortableBlit(t *testing.T) {
	rng := testutil.NewRand(3)

	for range 200 {
		dstW, dstH := 1+rng.IntN(37), 1+rng.IntN(11)
		srcW, srcH := 1+rng.IntN(29), 1+rng.IntN(9)
		x, y := rng.IntN(dstW+srcW+4)-srcW-2, rng.IntN(dstH+srcH+4)-srcH-2

		dst := testutil.RandomPixels(rng, dstW, dstH)
		src := testutil.RandomPixels(rng, srcW, srcH)

		want := testutil.Clone(dst)
		require.NoError(t, Portable().Blit(want, dstW, dstH, src, srcW, srcH, x, y))

		for _, k := range candidates() {
			got := testutil.Clone(dst)
			require.NoError(t, k.Blit(got, dstW, dstH, src, srcW, srcH, x, y))
			testutil.RequirePixelsEqual(t, got, want, dstW)
		}
	}
}

func TestVariantsMatchPortableResize(t *testing.T) {
	rng := testutil.NewRand(4)

	for _, policy := range []ResizePolicy{FixedPoint, FloatingPoint} {
		for range 100 {
			srcW, srcH := 1+rng.IntN(50), 1+rng.IntN(12)
			dstW, dstH := 1+rng.IntN(50), 1+rng.IntN(12)
			src := testutil.RandomPixels(rng, srcW, srcH)

			want := make([]byte, dstW*dstH*4)
			require.NoError(t, Portable().ResizeWith(policy, want, src, srcW, srcH, dstW, dstH))

			for _, k := range candidates() {
				got := make([]byte, dstW*dstH*4)
				require.NoError(t, k.ResizeWith(policy, got, src, srcW, srcH, dstW, dstH))
				testutil.RequirePixelsEqual(t, got, want, dstW)
			}
		}
	}
}
