// Package logging builds the zap logger used by costclip.
//
// Console output goes to stderr so it never mixes with converted text on
// stdout. An optional log file always receives debug output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted for the console logger.
const (
	LevelNone  = "none"
	LevelError = "error"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// Config selects console verbosity and an optional log file.
type Config struct {
	Level string
	File  string
}

// ValidLevel reports whether level is one of the accepted console levels.
func ValidLevel(level string) bool {
	switch level {
	case LevelNone, LevelError, LevelInfo, LevelDebug:
		return true
	}
	return false
}

// New returns a logger and a cleanup func that syncs it and closes the log
// file, if any.
func New(cfg Config) (*zap.Logger, func() error, error) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	var console zapcore.Core
	switch cfg.Level {
	case LevelDebug:
		console = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	case LevelInfo, "":
		console = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zapcore.InfoLevel)
	case LevelError:
		console = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zapcore.ErrorLevel)
	case LevelNone:
		console = zapcore.NewNopCore()
	default:
		return nil, nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	cores := []zapcore.Core{console}

	var file *os.File
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating log directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(f),
			zapcore.DebugLevel,
		))
	}

	log := zap.New(zapcore.NewTee(cores...))
	cleanup := func() error {
		// Sync on a console fd fails with EINVAL on some platforms; only the
		// file result matters.
		_ = log.Sync()
		if file == nil {
			return nil
		}
		return multierr.Append(file.Sync(), file.Close())
	}
	return log, cleanup, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
