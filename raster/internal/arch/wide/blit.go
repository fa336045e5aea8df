package wide

import "github.com/cwbudde/algo-rgba/raster/internal/arch/generic"

// Blit copies the intersection of src placed at (x, y) into dst. Each row
// moves whole 8-pixel groups with 32-byte loads/stores and bulk-copies the
// rest.
func Blit(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int) {
	r, ok := generic.Intersect(dstW, dstH, srcW, srcH, x, y)
	if !ok {
		return
	}

	blocks := r.W / Lanes
	span := r.W * 4
	for i := 0; i < r.H; i++ {
		d, s := r.Rows(i, dstW, srcW)
		dstRow := dst[d : d+span]
		srcRow := src[s : s+span]

		for k := 0; k < blocks; k++ {
			o := k * groupBytes
			*(*[groupBytes]byte)(dstRow[o:]) = *(*[groupBytes]byte)(srcRow[o:])
		}

		if rem := blocks * groupBytes; rem < span {
			copy(dstRow[rem:], srcRow[rem:])
		}
	}
}
