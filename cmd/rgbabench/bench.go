package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rgba/internal/testutil"
	"github.com/cwbudde/algo-rgba/raster"
)

var kernelNames = []string{"fill", "blend", "blit", "copy", "resize"}

// frameFunc renders one frame with k.
type frameFunc func(k raster.Kernel) error

// result is the summary of all runs of one kernel on one variant.
type result struct {
	kernel  string
	variant string

	// msPerFrame, fps and mpxPerSec are medians over the runs.
	msPerFrame float64
	fps        float64
	mpxPerSec  float64
}

func resolveKernels(args []string) ([]string, error) {
	if len(args) == 0 {
		return kernelNames, nil
	}

	var out []string
	for _, a := range args {
		name := strings.ToLower(strings.TrimSpace(a))
		if !slices.Contains(kernelNames, name) {
			return nil, fmt.Errorf("unknown kernel %q (want one of %s)", a, strings.Join(kernelNames, ", "))
		}
		out = append(out, name)
	}
	return out, nil
}

// scene holds the buffers shared by every kernel run.
type scene struct {
	cfg     config
	dst     []byte
	src     []byte
	half    []byte
	resized []byte
}

func newScene(cfg config) *scene {
	rng := testutil.NewRand(1)
	return &scene{
		cfg:     cfg,
		dst:     make([]byte, cfg.width*cfg.height*4),
		src:     testutil.RandomAlphaPixels(rng, cfg.width, cfg.height),
		half:    testutil.RandomPixels(rng, cfg.width/2, cfg.height/2),
		resized: make([]byte, cfg.dstWidth*cfg.dstHeight*4),
	}
}

// frame returns the per-frame work for kernel and the number of output
// pixels it produces.
func (s *scene) frame(kernel string) (frameFunc, int) {
	w, h := s.cfg.width, s.cfg.height
	switch kernel {
	case "fill":
		return func(k raster.Kernel) error {
			return k.Fill(s.dst, w, h, raster.LightBlue)
		}, w * h
	case "blend":
		return func(k raster.Kernel) error {
			return k.Blend(s.dst, s.src, w, h, w, h, 0, 0)
		}, w * h
	case "blit":
		return func(k raster.Kernel) error {
			return k.Blit(s.dst, w, h, s.half, w/2, h/2, w/4, h/4)
		}, (w / 2) * (h / 2)
	case "copy":
		return func(raster.Kernel) error {
			return raster.BlitSameSize(s.dst, s.src, w, h, 4)
		}, w * h
	default:
		dw, dh := s.cfg.dstWidth, s.cfg.dstHeight
		return func(k raster.Kernel) error {
			return k.ResizeWith(s.cfg.policy, s.resized, s.src, w, h, dw, dh)
		}, dw * dh
	}
}

func runAll(cfg config, variants []raster.Kernel, kernels []string) ([]result, error) {
	s := newScene(cfg)

	var results []result
	for _, name := range kernels {
		fn, pixels := s.frame(name)
		for _, k := range variants {
			// copy does not depend on the variant
			if name == "copy" && len(results) > 0 && results[len(results)-1].kernel == "copy" {
				break
			}

			secs, err := timeRuns(fn, k, cfg.frames, cfg.runs)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", name, k.Name(), err)
			}

			variant := k.Name()
			if name == "copy" {
				variant = "-"
			}
			results = append(results, summarize(name, variant, secs, cfg.frames, pixels))
		}
	}
	return results, nil
}

// timeRuns returns the wall time in seconds of each run of frames frames.
func timeRuns(fn frameFunc, k raster.Kernel, frames, runs int) ([]float64, error) {
	// warm-up frame, also surfaces argument errors before timing
	if err := fn(k); err != nil {
		return nil, err
	}

	secs := make([]float64, runs)
	for r := range runs {
		start := time.Now()
		for range frames {
			_ = fn(k)
		}
		secs[r] = max(time.Since(start).Seconds(), 1e-9)
	}
	return secs, nil
}

// summarize turns per-run durations into median per-frame figures.
func summarize(kernel, variant string, secs []float64, frames, pixels int) result {
	n := len(secs)

	ms := make([]float64, n)
	vecmath.ScaleBlock(ms, secs, 1000/float64(frames))

	// algo-vecmath has no element-wise divide
	fps := make([]float64, n)
	for i, s := range secs {
		fps[i] = 1 / s
	}
	vecmath.ScaleBlockInPlace(fps, float64(frames))

	mpx := make([]float64, n)
	vecmath.ScaleBlock(mpx, fps, float64(pixels)/1e6)

	return result{
		kernel:     kernel,
		variant:    variant,
		msPerFrame: median(ms),
		fps:        median(fps),
		mpxPerSec:  median(mpx),
	}
}

func median(v []float64) float64 {
	s := slices.Clone(v)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
