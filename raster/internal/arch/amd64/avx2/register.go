//go:build amd64 && !purego

// Package avx2 registers the 8-pixel raster kernels for AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-rgba/internal/cpu"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/wide"
)

// init registers the wide kernels. AVX2 has 256-bit integer lanes, one
// 8-pixel RGBA group per register (Haswell and later, Excavator and later).
//
// Priority: 20
func init() {
	entry := wide.Entry()
	entry.Name = "avx2"
	entry.SIMDLevel = cpu.SIMDAVX2
	entry.Priority = 20

	registry.Global.Register(entry)
}
