package main

import (
	"fmt"

	"github.com/cwbudde/algo-rgba/raster"
)

// layout sizes the canvas and the objects placed on it.
type layout struct {
	width, height int
	overlay       int // side of the gradient overlay
	object        int // side of the blitted square
}

var defaultLayout = layout{width: 400, height: 300, overlay: 200, object: 100}

// alloc recycles scene buffers; every scene of a layout uses the same few
// sizes.
var alloc raster.Allocator = raster.NewPool(16)

// placement is a named top-left position for a size x size object.
type placement struct {
	name string
	x, y int
}

// placements covers the centre, each edge and corner half off the canvas,
// and each side fully off it.
func placements(w, h, size int) []placement {
	half := size / 2
	cx, cy := w/2-half, h/2-half
	return []placement{
		{"center", cx, cy},
		{"left", -half, cy},
		{"right", w - half, cy},
		{"top", cx, -half},
		{"bottom", cx, h - half},
		{"top_left", -half, -half},
		{"top_right", w - half, -half},
		{"bottom_left", -half, h - half},
		{"bottom_right", w - half, h - half},
		{"completely_off_left", -size, cy},
		{"completely_off_right", w, cy},
		{"completely_off_top", cx, -size},
		{"completely_off_bottom", cx, h},
	}
}

// scene renders one image with a given kernel variant.
type scene struct {
	name   string
	render func(k raster.Kernel) (*raster.Buffer, error)
}

func buildScenes(l layout) []scene {
	scenes := []scene{
		{"fill_red", fillScene(l, raster.Color{R: 255, A: 255})},
		{"fill_green", fillScene(l, raster.Color{G: 255, A: 255})},
		{"background", fillScene(l, raster.LightBlue)},
		{"overlay", func(raster.Kernel) (*raster.Buffer, error) { return gradient(l.overlay) }},
		{"blend_half_green_on_red", halfGreenOnRed(l)},
	}

	for _, p := range placements(l.width, l.height, l.overlay) {
		scenes = append(scenes, scene{"blend_" + p.name, blendScene(l, p)})
	}
	for _, p := range placements(l.width, l.height, l.object) {
		scenes = append(scenes, scene{"blit_" + p.name, blitScene(l, p)})
	}

	for _, policy := range []raster.ResizePolicy{raster.FixedPoint, raster.FloatingPoint} {
		scenes = append(scenes,
			scene{fmt.Sprintf("resize_up_%s", policy), resizeScene(l.overlay, l.width, l.height, policy)},
			scene{fmt.Sprintf("resize_down_%s", policy), resizeScene(l.overlay, l.overlay/3, l.overlay/4, policy)},
		)
	}
	return scenes
}

func gradient(size int) (*raster.Buffer, error) {
	b, err := alloc.Create(size, size)
	if err != nil {
		return nil, err
	}
	b.FillGradient()
	return b, nil
}

func canvas(k raster.Kernel, l layout, c raster.Color) (*raster.Buffer, error) {
	b, err := alloc.Create(l.width, l.height)
	if err != nil {
		return nil, err
	}
	if err := k.Fill(b.Pix, b.Width, b.Height, c); err != nil {
		return nil, err
	}
	return b, nil
}

func fillScene(l layout, c raster.Color) func(raster.Kernel) (*raster.Buffer, error) {
	return func(k raster.Kernel) (*raster.Buffer, error) {
		return canvas(k, l, c)
	}
}

func halfGreenOnRed(l layout) func(raster.Kernel) (*raster.Buffer, error) {
	return func(k raster.Kernel) (*raster.Buffer, error) {
		bg, err := canvas(k, l, raster.Color{R: 255, A: 255})
		if err != nil {
			return nil, err
		}
		ov, err := canvas(k, l, raster.Color{G: 255, A: 128})
		if err != nil {
			return nil, err
		}
		defer alloc.Destroy(ov)

		return bg, k.Blend(bg.Pix, ov.Pix, bg.Width, bg.Height, ov.Width, ov.Height, 0, 0)
	}
}

func blendScene(l layout, p placement) func(raster.Kernel) (*raster.Buffer, error) {
	return func(k raster.Kernel) (*raster.Buffer, error) {
		bg, err := canvas(k, l, raster.LightBlue)
		if err != nil {
			return nil, err
		}
		ov, err := gradient(l.overlay)
		if err != nil {
			return nil, err
		}
		defer alloc.Destroy(ov)

		return bg, k.Blend(bg.Pix, ov.Pix, bg.Width, bg.Height, ov.Width, ov.Height, p.x, p.y)
	}
}

func blitScene(l layout, p placement) func(raster.Kernel) (*raster.Buffer, error) {
	return func(k raster.Kernel) (*raster.Buffer, error) {
		dst, err := canvas(k, l, raster.LightBlue)
		if err != nil {
			return nil, err
		}
		obj, err := alloc.Create(l.object, l.object)
		if err != nil {
			return nil, err
		}
		defer alloc.Destroy(obj)
		if err := k.Fill(obj.Pix, obj.Width, obj.Height, raster.Color{R: 255, A: 255}); err != nil {
			return nil, err
		}

		return dst, k.Blit(dst.Pix, dst.Width, dst.Height, obj.Pix, obj.Width, obj.Height, p.x, p.y)
	}
}

func resizeScene(size, dstW, dstH int, policy raster.ResizePolicy) func(raster.Kernel) (*raster.Buffer, error) {
	return func(k raster.Kernel) (*raster.Buffer, error) {
		src, err := gradient(size)
		if err != nil {
			return nil, err
		}
		defer alloc.Destroy(src)

		dst, err := alloc.Create(dstW, dstH)
		if err != nil {
			return nil, err
		}
		return dst, k.ResizeWith(policy, dst.Pix, src.Pix, src.Width, src.Height, dst.Width, dst.Height)
	}
}
