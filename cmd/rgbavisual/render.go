package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-rgba/raster"
)

type options struct {
	dir      string
	format   string
	variants []raster.Kernel
	jobs     int
	layout   layout
}

// report summarizes one render pass.
type report struct {
	written    []string
	mismatches []string // scenes where a variant differs from generic
}

// render draws every scene with every variant concurrently, writes the
// images to opts.dir and compares each variant against the generic output.
func render(ctx context.Context, logger *zap.Logger, opts options) (report, error) {
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return report{}, err
	}

	scenes := buildScenes(opts.layout)
	variants := opts.variants
	if !hasGeneric(variants) {
		variants = append([]raster.Kernel{raster.Portable()}, variants...)
	}

	var (
		mu      sync.Mutex
		rep     report
		outputs = make(map[string]map[string][]byte, len(scenes))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))

	for _, sc := range scenes {
		for _, k := range variants {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				b, err := sc.render(k)
				if err != nil {
					return fmt.Errorf("%s/%s: %w", sc.name, k.Name(), err)
				}
				defer alloc.Destroy(b)

				name := sc.name + "_" + k.Name()
				path, err := writeImage(opts.dir, name, opts.format, b)
				if err != nil {
					return err
				}
				logger.Debug("scene written", zap.String("scene", sc.name),
					zap.String("variant", k.Name()), zap.String("path", path))

				mu.Lock()
				defer mu.Unlock()
				rep.written = append(rep.written, path)
				if outputs[sc.name] == nil {
					outputs[sc.name] = make(map[string][]byte, len(variants))
				}
				outputs[sc.name][k.Name()] = bytes.Clone(b.Pix)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return rep, err
	}

	for _, sc := range scenes {
		ref := outputs[sc.name]["generic"]
		for name, pix := range outputs[sc.name] {
			if !bytes.Equal(pix, ref) {
				rep.mismatches = append(rep.mismatches, sc.name+"/"+name)
			}
		}
	}
	sort.Strings(rep.written)
	sort.Strings(rep.mismatches)
	return rep, nil
}

func hasGeneric(ks []raster.Kernel) bool {
	for _, k := range ks {
		if k.Name() == "generic" {
			return true
		}
	}
	return false
}
