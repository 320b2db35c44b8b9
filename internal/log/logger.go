// Package log builds the process logger from config.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dashline/internal/config"
)

// New returns a JSON zap logger writing to the rotated logging.file.
// With no file configured the logger is a no-op and the closer does nothing.
func New(cfg config.LoggingConfig) (*zap.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zap.NewNop(), nopCloser{}, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	w, err := NewRotatingWriter(RotationConfig{
		File:      cfg.File,
		MaxSizeMB: cfg.MaxSizeMB,
		MaxFiles:  cfg.MaxFiles,
	})
	if err != nil {
		return nil, nil, err
	}

	return NewWithWriter(zapcore.AddSync(w), level), w, nil
}

// NewWithWriter builds the production-shaped logger over an arbitrary sink.
func NewWithWriter(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(level))
	return zap.New(core).With(zap.String("app", "dashline"))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
