// Package narrow implements the raster kernels over 4-pixel (128-bit)
// groups, the register width of SSE2 and NEON.
//
// Blend deinterleaves a group into channel-major 16-bit lanes before the
// multiply-add; the largest intermediate, 255*255, fits in a uint16.
// Columns that do not fill a whole group go to the generic kernels.
package narrow

import "github.com/cwbudde/algo-rgba/raster/internal/arch/registry"

// Lanes is the number of pixels per group.
const Lanes = 4

const groupBytes = Lanes * 4

// Entry returns the narrow kernels for registration by sse2 and neon.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:  "narrow",
		Lanes: Lanes,

		Fill:   Fill,
		Blend:  Blend,
		Blit:   Blit,
		Resize: Resize,
	}
}
