// Package logger builds the zap logger used across the service.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Rotate struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns a logger writing to stdout. With json=false it uses the
// console encoder, which is what local development wants.
func New(level string, json bool) (*zap.Logger, func()) {
	return build(level, json, nil)
}

// NewWithRotate additionally tees into a size-rotated file.
func NewWithRotate(level string, json bool, r Rotate) (*zap.Logger, func()) {
	return build(level, json, &r)
}

func build(level string, json bool, rotate *Rotate) (*zap.Logger, func()) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl),
	}
	if rotate != nil && rotate.Filename != "" {
		w := &lumberjack.Logger{
			Filename:   rotate.Filename,
			MaxSize:    maxInt(1, rotate.MaxSizeMB),
			MaxBackups: maxInt(0, rotate.MaxBackups),
			MaxAge:     maxInt(0, rotate.MaxAgeDays),
			Compress:   rotate.Compress,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return l, func() { _ = l.Sync() }
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
