//go:build amd64 && !purego

// Package sse2 registers the 4-pixel raster kernels for SSE2 CPUs.
package sse2

import (
	"github.com/cwbudde/algo-rgba/internal/cpu"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/narrow"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
)

// init registers the narrow kernels. SSE2 is the x86-64 baseline, so this
// entry is always available on amd64 unless ForceGeneric is set.
//
// Priority: 10
func init() {
	entry := narrow.Entry()
	entry.Name = "sse2"
	entry.SIMDLevel = cpu.SIMDSSE2
	entry.Priority = 10

	registry.Global.Register(entry)
}
