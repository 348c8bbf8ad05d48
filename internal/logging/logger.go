// Package logging builds the zap logger used by fourcc and hands out
// per-category child loggers. Logs go to stderr unless another writer is
// given; stdout carries only command output.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryCLI      Category = "cli"      // Command dispatch, exit codes
	CategoryConfig   Category = "config"   // Config loading and overrides
	CategoryDecode   Category = "decode"   // Integer -> FourCC
	CategoryEncode   Category = "encode"   // FourCC -> integer
	CategoryRegistry Category = "registry" // Known-code lookups
)

// Options controls logger construction.
type Options struct {
	Level   string         // debug, info, warn, error
	Format  string         // json, console
	Verbose bool           // forces debug level
	Filter  CategoryFilter // nil enables every category
	Output  io.Writer      // defaults to os.Stderr
}

// CategoryFilter decides which categories log. config.LoggingConfig
// implements it.
type CategoryFilter interface {
	IsCategoryEnabled(category string) bool
}

// Logger wraps a zap logger with category filtering.
type Logger struct {
	base   *zap.Logger
	filter CategoryFilter
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(level))
	return wrap(zap.New(core), opts.Filter), nil
}

func wrap(base *zap.Logger, filter CategoryFilter) *Logger {
	return &Logger{base: base, filter: filter}
}

// Get returns the child logger for a category. Disabled categories get a no-op logger.
func (l *Logger) Get(category Category) *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}
	if l.filter != nil && !l.filter.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil || l.base == nil {
		return nil
	}
	return l.base.Sync()
}
