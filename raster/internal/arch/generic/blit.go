package generic

// Blit copies src (srcW x srcH) into dst (dstW x dstH) at (x, y), row by
// row, over the intersection only.
func Blit(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int) {
	r, ok := Intersect(dstW, dstH, srcW, srcH, x, y)
	if !ok {
		return
	}

	span := r.W * 4
	for i := 0; i < r.H; i++ {
		d, s := r.Rows(i, dstW, srcW)
		copy(dst[d:d+span], src[s:s+span])
	}
}
