// Package wide implements the raster kernels over 8-pixel (256-bit) groups.
//
// Each kernel loads a full group into fixed-size lane arrays, operates on
// all lanes without per-lane branches, and stores the group back with a
// single 32-byte array assignment. Fixed-size arrays keep the loops simple
// enough for the compiler to keep lanes in registers. Columns that do not
// fill a whole group are handed to the generic kernels.
//
// The package has no build constraints so every architecture can test it;
// amd64/avx2 registers it for AVX2-capable CPUs.
package wide

import "github.com/cwbudde/algo-rgba/raster/internal/arch/registry"

// Lanes is the number of pixels per group.
const Lanes = 8

// groupBytes is the size of one group in bytes.
const groupBytes = Lanes * 4

// Entry returns the wide kernels. Name, SIMDLevel and Priority are left for
// the registering architecture package to fill in.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:  "wide",
		Lanes: Lanes,

		Fill:   Fill,
		Blend:  Blend,
		Blit:   Blit,
		Resize: Resize,
	}
}
