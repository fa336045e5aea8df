package raster

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-rgba/internal/cpu"
	"github.com/cwbudde/algo-rgba/raster/internal/arch/registry"
	"go.uber.org/zap"
)

var (
	bestKernel   Kernel
	bestInitOnce sync.Once
)

// Best returns the highest-priority registered variant supported by the
// current CPU. The choice is made once per process.
func Best() Kernel {
	bestInitOnce.Do(initBestKernel)
	return bestKernel
}

func initBestKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("raster: no kernel registered (missing generic fallback?)")
	}
	if entry.Fill == nil || entry.Blend == nil || entry.Blit == nil || entry.Resize == nil {
		panic("raster: selected kernel " + entry.Name + " is incomplete")
	}

	bestKernel = Kernel{entry: *entry}
	Logger().Debug("kernel selected", zap.Stringer("kernel", bestKernel))
}

// Registered returns the variants registered for this build, highest
// priority first, whether or not the CPU supports them.
func Registered() []Kernel {
	entries := registry.Global.ListEntries()
	out := make([]Kernel, len(entries))
	for i, e := range entries {
		out[i] = Kernel{entry: e}
	}
	return out
}

// Select returns a variant by name. "generic"/"portable", "wide" and
// "narrow" always resolve; backend names such as "avx2" resolve when
// registered in this build.
func Select(name string) (Kernel, error) {
	switch name {
	case "generic", "portable", "scalar":
		return Portable(), nil
	case "wide":
		return Wide(), nil
	case "narrow":
		return Narrow(), nil
	case "best", "":
		return Best(), nil
	}

	if e, ok := registry.Global.ByName(name); ok {
		return Kernel{entry: e}, nil
	}
	return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Fill writes c to every pixel using Best.
func Fill(pix []byte, width, height int, c Color) error {
	return Best().Fill(pix, width, height, c)
}

// Blend composites ov over bg at (x, y) using Best.
func Blend(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int) error {
	return Best().Blend(bg, ov, bgW, bgH, ovW, ovH, x, y)
}

// Blit copies src onto dst at (x, y) using Best.
func Blit(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int) error {
	return Best().Blit(dst, dstW, dstH, src, srcW, srcH, x, y)
}

// Resize resamples src into dst with FixedPoint sampling using Best.
func Resize(dst, src []byte, srcW, srcH, dstW, dstH int) error {
	return Best().Resize(dst, src, srcW, srcH, dstW, dstH)
}

// ResizeWith resamples src into dst under policy using Best.
func ResizeWith(policy ResizePolicy, dst, src []byte, srcW, srcH, dstW, dstH int) error {
	return Best().ResizeWith(policy, dst, src, srcW, srcH, dstW, dstH)
}
