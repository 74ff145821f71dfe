// Package logging builds the application logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nhle/todo-app/internal/model"
)

// New returns a logger writing to cfg.File, tagged with a per-process run ID.
// The returned closer releases the log file. An empty File discards output,
// since the interactive UI owns the terminal.
func New(cfg model.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
	return logger.With("run", RunID()), closer, nil
}

// ParseLevel accepts debug, info, warn or error (case-insensitive). Empty
// means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

var runID = uuid.New().String()[:8]

// RunID identifies the current process in log output.
func RunID() string {
	return runID
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
