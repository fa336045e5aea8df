package raster

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.RWMutex
	logger = newDefaultLogger()
)

// newDefaultLogger writes warnings and errors to stderr.
func newDefaultLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core).Named("raster")
}

// SetLogger replaces the logger used for kernel diagnostics. A nil logger
// silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	logMu.Lock()
	logger = l
	logMu.Unlock()
}

// Logger returns the logger used for kernel diagnostics.
func Logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()

	return logger
}

func logNilBuffer(op, buffer string) {
	Logger().Warn("buffer is nil, skipping", zap.String("op", op), zap.String("buffer", buffer))
}

func logDegenerate(op string, dims ...int) {
	Logger().Debug("zero-area operation, skipping", zap.String("op", op), zap.Ints("dims", dims))
}
