package wide

import (
	"encoding/binary"

	"github.com/cwbudde/algo-rgba/raster/internal/arch/generic"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
)

// Resize resamples src into dst. Source pixels for 8 destination columns
// are gathered into one lane array and stored contiguously; trailing
// columns use the generic sampler of the same policy.
func Resize(dst, src []byte, srcW, srcH, dstW, dstH int, policy registry.ResizePolicy) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return
	}

	sx := generic.NewSampler(policy, srcW, dstW)
	sy := generic.NewSampler(policy, srcH, dstH)

	var idx [Lanes]int
	var group [groupBytes]byte
	blocks := dstW / Lanes

	for y := 0; y < dstH; y++ {
		row := sy.Index(y)
		srcRow := src[row*srcW*4 : (row+1)*srcW*4]
		dstRow := dst[y*dstW*4 : (y+1)*dstW*4]

		for k := 0; k < blocks; k++ {
			x := k * Lanes
			for i := range Lanes {
				idx[i] = sx.Index(x+i) * 4
			}
			for i := range Lanes {
				binary.LittleEndian.PutUint32(group[i*4:], binary.LittleEndian.Uint32(srcRow[idx[i]:]))
			}
			*(*[groupBytes]byte)(dstRow[x*4:]) = group
		}

		generic.ResizeSpan(dstRow, srcRow, blocks*Lanes, dstW, sx)
	}
}
