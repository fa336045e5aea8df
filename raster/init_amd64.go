//go:build amd64 && !purego

package raster

import (
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/generic"    // register generic backend
)
