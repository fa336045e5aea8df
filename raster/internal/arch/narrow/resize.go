package narrow

import (
	"github.com/cwbudde/algo-rgba/raster/internal/arch/generic"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
)

// Resize gathers the 4 source pixels of each destination group into a
// 16-byte vector and stores it in one assignment. Trailing columns use the
// generic sampler of the same policy.
func Resize(dst, src []byte, srcW, srcH, dstW, dstH int, policy registry.ResizePolicy) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return
	}

	sx := generic.NewSampler(policy, srcW, dstW)
	sy := generic.NewSampler(policy, srcH, dstH)
	blocks := dstW / Lanes

	for y := 0; y < dstH; y++ {
		row := sy.Index(y)
		srcRow := src[row*srcW*4 : (row+1)*srcW*4]
		dstRow := dst[y*dstW*4 : (y+1)*dstW*4]

		for k := 0; k < blocks; k++ {
			x := k * Lanes
			var vec [groupBytes]byte
			for i := range Lanes {
				*(*[4]byte)(vec[i*4:]) = *(*[4]byte)(srcRow[sx.Index(x+i)*4:])
			}
			*(*[groupBytes]byte)(dstRow[x*4:]) = vec
		}

		generic.ResizeSpan(dstRow, srcRow, blocks*Lanes, dstW, sx)
	}
}
