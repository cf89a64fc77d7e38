// Package logging builds the file-only zap logger. A TUI owns the
// terminal, so the logger must never write to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger writing only to path. With an empty path
// and debug off it returns a nop logger; debug without a path falls back to
// a file under the system temp directory.
func New(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		if !debug {
			return zap.NewNop(), nil
		}
		path = filepath.Join(os.TempDir(), "chipfield.log")
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
