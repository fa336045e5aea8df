//go:build arm64 && !purego

package raster

import (
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/generic"    // register generic backend
)
