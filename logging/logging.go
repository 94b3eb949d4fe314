// Package logging builds the zap logger used by the host.
// tcell owns the terminal, so output always goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "vi-pong.log"
	// MaxSize triggers rotation at startup
	MaxSize = 10 * 1024 * 1024
)

// Options selects where and how much to log
type Options struct {
	Enabled     bool
	Level       string
	Dir         string
	Development bool
}

// Setup returns a logger and a closer that flushes and releases the file.
// A disabled config yields a no-op logger.
func Setup(opts Options) (*zap.Logger, func() error, error) {
	if !opts.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", opts.Level)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log dir %s", opts.Dir)
	}

	path := filepath.Join(opts.Dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}

	var enc zapcore.Encoder
	if opts.Development {
		ec := zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(ec)
	} else {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	closer := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closer, nil
}

// rotate renames an oversized log to a timestamped name
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat log file %s", path)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s.%s%s", base, now.Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return errors.Wrapf(err, "rotate log file %s", path)
	}
	return nil
}

// WithSession tags every entry with a fresh session id
func WithSession(logger *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return logger.With(zap.String("session", id)), id
}
