package generic

// Rect is the overlap of a placed source with its destination, in both
// coordinate systems.
type Rect struct {
	DstX, DstY int
	SrcX, SrcY int
	W, H       int
}

// Intersect places a srcW x srcH source at (x, y) on a dstW x dstH
// destination and returns the overlapping rectangle. ok is false when the
// overlap is empty.
func Intersect(dstW, dstH, srcW, srcH, x, y int) (r Rect, ok bool) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}, false
	}
	if x >= dstW || y >= dstH {
		return Rect{}, false
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+srcW, dstW), min(y+srcH, dstH)
	if x0 >= x1 || y0 >= y1 {
		return Rect{}, false
	}

	return Rect{
		DstX: x0,
		DstY: y0,
		SrcX: x0 - x,
		SrcY: y0 - y,
		W:    x1 - x0,
		H:    y1 - y0,
	}, true
}

// Rows returns the byte offsets of row i of r in a destination of width
// dstW and a source of width srcW.
func (r Rect) Rows(i, dstW, srcW int) (dstOff, srcOff int) {
	dstOff = ((r.DstY+i)*dstW + r.DstX) * 4
	srcOff = ((r.SrcY+i)*srcW + r.SrcX) * 4
	return dstOff, srcOff
}
