//go:build arm64 && !purego

// Package neon registers the 4-pixel raster kernels for ARM NEON.
package neon

import (
	"github.com/cwbudde/algo-rgba/internal/cpu"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/narrow"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
)

// init registers the narrow kernels under the NEON level.
//
// Priority: 15
func init() {
	entry := narrow.Entry()
	entry.Name = "neon"
	entry.SIMDLevel = cpu.SIMDNEON
	entry.Priority = 15

	registry.Global.Register(entry)
}
