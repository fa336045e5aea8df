package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-rgba/raster"
)

var formats = []string{"png", "bmp", "tiff"}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeImage encodes b into dir/name.format and returns the path.
func writeImage(dir, name, format string, b *raster.Buffer) (path string, err error) {
	path = filepath.Join(dir, name+"."+format)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := encode(f, b.NRGBA(), format); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}
