package generic

import "github.com/cwbudde/algo-rgba/raster/internal/arch/registry"

// Sampler maps destination coordinates to source coordinates along one
// axis for a given resize policy.
type Sampler struct {
	policy registry.ResizePolicy
	fixed  uint64
	ratio  float32
	limit  int
}

// NewSampler builds a sampler for srcDim -> dstDim. dstDim must be > 0.
func NewSampler(policy registry.ResizePolicy, srcDim, dstDim int) Sampler {
	s := Sampler{policy: policy, limit: srcDim - 1}
	switch policy {
	case registry.FloatingPoint:
		s.ratio = float32(srcDim) / float32(dstDim)
	default:
		s.policy = registry.FixedPoint
		s.fixed = (uint64(srcDim) << 16) / uint64(dstDim)
	}
	return s
}

// Index returns the source coordinate sampled for destination coordinate c.
func (s Sampler) Index(c int) int {
	if s.policy == registry.FixedPoint {
		// floor(c*src/dst) never exceeds src-1 with an unbiased ratio
		return int((uint64(c) * s.fixed) >> 16)
	}

	idx := int(float32(c) * s.ratio)
	if idx > s.limit {
		idx = s.limit
	}
	return idx
}

// Resize resamples src (srcW x srcH) into dst (dstW x dstH) with
// nearest-neighbour sampling under policy. Zero dimensions are a no-op.
func Resize(dst, src []byte, srcW, srcH, dstW, dstH int, policy registry.ResizePolicy) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return
	}

	sx := NewSampler(policy, srcW, dstW)
	sy := NewSampler(policy, srcH, dstH)

	for y := 0; y < dstH; y++ {
		row := sy.Index(y)
		srcRow := src[row*srcW*4 : (row+1)*srcW*4]
		dstRow := dst[y*dstW*4 : (y+1)*dstW*4]
		ResizeSpan(dstRow, srcRow, 0, dstW, sx)
	}
}

// ResizeSpan fills destination columns [from, to) of dstRow from srcRow.
func ResizeSpan(dstRow, srcRow []byte, from, to int, sx Sampler) {
	for x := from; x < to; x++ {
		si := sx.Index(x) * 4
		copy(dstRow[x*4:x*4+4], srcRow[si:si+4])
	}
}
