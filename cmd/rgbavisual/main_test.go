package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-rgba/raster"
)

var testLayout = layout{width: 40, height: 30, overlay: 20, object: 10}

func TestPlacements(t *testing.T) {
	ps := placements(400, 300, 200)
	require.Len(t, ps, 13)

	byName := make(map[string][2]int, len(ps))
	for _, p := range ps {
		byName[p.name] = [2]int{p.x, p.y}
	}
	assert.Equal(t, [2]int{100, 50}, byName["center"])
	assert.Equal(t, [2]int{-100, -100}, byName["top_left"])
	assert.Equal(t, [2]int{300, 200}, byName["bottom_right"])
	assert.Equal(t, [2]int{400, 50}, byName["completely_off_right"])
	assert.Equal(t, [2]int{100, -200}, byName["completely_off_top"])
}

func TestBlendSceneOffCanvasKeepsBackground(t *testing.T) {
	for _, p := range placements(testLayout.width, testLayout.height, testLayout.overlay)[9:] {
		b, err := blendScene(testLayout, p)(raster.Portable())
		require.NoError(t, err)
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				require.Equal(t, raster.LightBlue, b.At(x, y), "%s (%d,%d)", p.name, x, y)
			}
		}
	}
}

func TestBlitSceneCorner(t *testing.T) {
	p := placement{"top_left", -5, -5}
	b, err := blitScene(testLayout, p)(raster.Wide())
	require.NoError(t, err)

	red := raster.Color{R: 255, A: 255}
	assert.Equal(t, red, b.At(0, 0))
	assert.Equal(t, red, b.At(4, 4))
	assert.Equal(t, raster.LightBlue, b.At(5, 0))
	assert.Equal(t, raster.LightBlue, b.At(0, 5))
}

func TestRenderAllFormats(t *testing.T) {
	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			rep, err := render(context.Background(), zap.NewNop(), options{
				dir:      dir,
				format:   format,
				variants: raster.Variants(),
				jobs:     4,
				layout:   testLayout,
			})
			require.NoError(t, err)

			assert.Empty(t, rep.mismatches)
			assert.Len(t, rep.written, len(buildScenes(testLayout))*len(raster.Variants()))
			assert.FileExists(t, filepath.Join(dir, "blend_center_wide."+format))
		})
	}
}

func TestRenderAddsGenericReference(t *testing.T) {
	dir := t.TempDir()
	rep, err := render(context.Background(), zap.NewNop(), options{
		dir:      dir,
		format:   "png",
		variants: []raster.Kernel{raster.Narrow()},
		layout:   testLayout,
	})
	require.NoError(t, err)
	assert.Empty(t, rep.mismatches)
	assert.FileExists(t, filepath.Join(dir, "fill_red_generic.png"))
	assert.FileExists(t, filepath.Join(dir, "fill_red_narrow.png"))
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render(ctx, zap.NewNop(), options{
		dir:      t.TempDir(),
		format:   "png",
		variants: raster.Variants(),
		layout:   testLayout,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodeDecodes(t *testing.T) {
	b, err := gradient(8)
	require.NoError(t, err)

	for _, format := range formats {
		var buf bytes.Buffer
		require.NoError(t, encode(&buf, b.NRGBA(), format), format)

		var w, h int
		switch format {
		case "png":
			img, err := png.Decode(&buf)
			require.NoError(t, err)
			w, h = img.Bounds().Dx(), img.Bounds().Dy()
		case "bmp":
			img, err := bmp.Decode(&buf)
			require.NoError(t, err)
			w, h = img.Bounds().Dx(), img.Bounds().Dy()
		case "tiff":
			img, err := tiff.Decode(&buf)
			require.NoError(t, err)
			w, h = img.Bounds().Dx(), img.Bounds().Dy()
		}
		assert.Equal(t, 8, w, format)
		assert.Equal(t, 8, h, format)
	}

	assert.Error(t, encode(&bytes.Buffer{}, b.NRGBA(), "gif"))
}

func TestWriteImageBadDir(t *testing.T) {
	b, err := gradient(4)
	require.NoError(t, err)

	_, err = writeImage(filepath.Join(t.TempDir(), "missing"), "x", "png", b)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
