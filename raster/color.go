package raster

import "image/color"

// Color is one non-premultiplied RGBA pixel.
type Color struct {
	R, G, B, A uint8
}

// NRGBA converts c to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Some colours used by the tools and tests.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	LightBlue   = Color{173, 216, 230, 255}
)
