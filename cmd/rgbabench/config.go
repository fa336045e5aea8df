package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rgba/raster"
)

type config struct {
	width, height       int
	dstWidth, dstHeight int
	frames              int
	runs                int
	policy              raster.ResizePolicy
}

// loadConfig resolves flag values, falling back to the environment and
// then to built-in defaults. Zero or empty flag values mean "not set".
func loadConfig(size, to string, frames, runs int, policy string) (config, error) {
	var cfg config
	var err error

	if size == "" {
		size = envOr("RGBABENCH_SIZE", "1920x1080")
	}
	if cfg.width, cfg.height, err = parseSize(size); err != nil {
		return cfg, err
	}
	if cfg.dstWidth, cfg.dstHeight, err = parseSize(to); err != nil {
		return cfg, err
	}

	if frames == 0 {
		if frames, err = strconv.Atoi(envOr("RGBABENCH_FRAMES", "100")); err != nil {
			return cfg, fmt.Errorf("RGBABENCH_FRAMES: %w", err)
		}
	}
	if runs == 0 {
		if runs, err = strconv.Atoi(envOr("RGBABENCH_RUNS", "5")); err != nil {
			return cfg, fmt.Errorf("RGBABENCH_RUNS: %w", err)
		}
	}
	if frames < 1 || runs < 1 {
		return cfg, fmt.Errorf("frames and runs must be positive, got %d and %d", frames, runs)
	}
	cfg.frames, cfg.runs = frames, runs

	switch strings.ToLower(policy) {
	case "fixed", "":
		cfg.policy = raster.FixedPoint
	case "float":
		cfg.policy = raster.FloatingPoint
	default:
		return cfg, fmt.Errorf("unknown resize policy %q", policy)
	}

	return cfg, nil
}

// parseSize parses "WxH" into positive dimensions.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
