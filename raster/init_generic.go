//go:build purego || (!amd64 && !arm64)

package raster

import (
	_ "github.com/cwbudde/algo-rgba/raster/internal/arch/generic" // register generic backend
)
