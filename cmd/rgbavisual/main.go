// Command rgbavisual renders the raster kernels' visual test scenes.
//
// Every scene (fills, the 13-position blend and blit placement grids, and
// resizes under both policies) is drawn with each kernel variant and
// written as an image file, so the variants can be compared by eye. The
// tool also compares the pixels of every variant against the generic
// kernels and exits non-zero on any difference.
//
// Usage:
//
//	rgbavisual [flags]
//
// Examples:
//
//	rgbavisual -out test_output
//	rgbavisual -format tiff -variant wide
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rgba/raster"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file read before flags")
	out := flag.String("out", "", "output directory (default $RGBAVISUAL_OUT or test_output)")
	format := flag.String("format", "png", "image format: "+strings.Join(formats, ", "))
	variant := flag.String("variant", "", "render one variant besides generic (default: all)")
	jobs := flag.Int("j", runtime.GOMAXPROCS(0), "scenes rendered in parallel")
	verbose := flag.Bool("v", false, "development logging")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", *envFile, err)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	raster.SetLogger(logger.Named("raster"))

	dir := *out
	if dir == "" {
		dir = os.Getenv("RGBAVISUAL_OUT")
	}
	if dir == "" {
		dir = "test_output"
	}

	variants := raster.Variants()
	if *variant != "" {
		k, err := raster.Select(*variant)
		if err != nil {
			logger.Fatal("bad variant", zap.Error(err))
		}
		variants = []raster.Kernel{k}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := render(ctx, logger, options{
		dir:      dir,
		format:   strings.ToLower(*format),
		variants: variants,
		jobs:     *jobs,
		layout:   defaultLayout,
	})
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}

	for _, p := range rep.written {
		fmt.Println("Saved:", p)
	}
	if len(rep.mismatches) > 0 {
		logger.Error("variants differ from generic", zap.Strings("scenes", rep.mismatches))
		os.Exit(1)
	}
	logger.Info("scenes rendered", zap.Int("files", len(rep.written)), zap.String("dir", dir))
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
