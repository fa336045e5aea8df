package generic

import (
	"github.com/cwbudde/algo-rgba/internal/cpu"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
)

// init registers the portable kernels. They are the fallback when no
// vector variant is supported or ForceGeneric is set.
//
// Priority: 0
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the generic OpEntry.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Lanes:     1,

		Fill:   Fill,
		Blend:  Blend,
		Blit:   Blit,
		Resize: Resize,
	}
}
