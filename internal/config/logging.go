package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w at the level named by
// OCTOSHOT_LOG_LEVEL (info when unset).
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level := log.InfoLevel
	if name := GetEnv(EnvLogLevel, ""); name != "" {
		l, err := log.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		level = l
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// FileLogger opens the log file named by OCTOSHOT_LOG_FILE for appending and
// returns a logger writing to it, plus a function closing the file. Without
// the variable the logger discards everything.
func FileLogger(prefix string) (*log.Logger, func() error, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := NewLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
