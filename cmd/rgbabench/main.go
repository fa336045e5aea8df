// Command rgbabench measures raster kernel throughput per variant.
//
// Usage:
//
//	rgbabench [flags] [kernel ...]
//
// Kernels are fill, blend, blit, copy and resize; without arguments all of
// them run. Settings may also come from the environment or a .env file
// (RGBABENCH_SIZE, RGBABENCH_FRAMES, RGBABENCH_RUNS, ALGO_RGBA_NO_SIMD).
//
// Examples:
//
//	rgbabench
//	rgbabench -size 640x480 -frames 500 blend
//	rgbabench -variant wide -to 960x540 -policy float resize
//	rgbabench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rgba/raster"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file read before flags")
	size := flag.String("size", "", "frame size WxH (default $RGBABENCH_SIZE or 1920x1080)")
	to := flag.String("to", "1280x720", "resize destination size WxH")
	frames := flag.Int("frames", 0, "frames per run (default $RGBABENCH_FRAMES or 100)")
	runs := flag.Int("runs", 0, "timed runs per kernel (default $RGBABENCH_RUNS or 5)")
	variant := flag.String("variant", "", "run one variant (generic, wide, narrow, best or a backend name)")
	policy := flag.String("policy", "fixed", "resize policy: fixed or float")
	list := flag.Bool("list", false, "list registered variants and exit")
	verbose := flag.Bool("v", false, "development logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rgbabench [flags] [kernel ...]\n\n")
		fmt.Fprintf(os.Stderr, "Measures frames/s and Mpx/s of the raster kernels.\n")
		fmt.Fprintf(os.Stderr, "Kernels: %s\n\n", strings.Join(kernelNames, ", "))
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Missing .env is normal; anything else is worth a note.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", *envFile, err)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	raster.SetLogger(logger.Named("raster"))

	if *list {
		printVariants(os.Stdout)
		return
	}

	cfg, err := loadConfig(*size, *to, *frames, *runs, *policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	kernels, err := resolveKernels(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	variants := raster.Variants()
	if *variant != "" {
		k, err := raster.Select(*variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		variants = []raster.Kernel{k}
	}

	logger.Debug("benchmark configured",
		zap.Int("width", cfg.width),
		zap.Int("height", cfg.height),
		zap.Int("frames", cfg.frames),
		zap.Int("runs", cfg.runs),
		zap.Stringer("policy", cfg.policy),
		zap.Stringer("best", raster.Best()),
	)

	results, err := runAll(cfg, variants, kernels)
	if err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("%dx%d, %d frames x %d runs, best variant %s\n\n",
		cfg.width, cfg.height, cfg.frames, cfg.runs, raster.Best().Name())
	printResults(os.Stdout, results)
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		logger, err = cfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
