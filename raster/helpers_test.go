package raster

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// silenceLogs drops kernel diagnostics for the duration of t.
func silenceLogs(t *testing.T) {
	t.Helper()
	prev := Logger()
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(prev) })
}

// observeLogs captures warnings emitted during t.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

// solid returns width*height pixels of c.
func solid(width, height int, c Color) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	return pix
}

func px(pix []byte, width, x, y int) Color {
	o := (y*width + x) * 4
	return Color{pix[o], pix[o+1], pix[o+2], pix[o+3]}
}
