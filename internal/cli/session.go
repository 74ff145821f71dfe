package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/nhle/todo-app/internal/logging"
	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
)

// session is the store and logger a command runs against.
type session struct {
	store  *store.SQLiteStore
	logger *log.Logger
	closer io.Closer
}

// openSession loads the config, applies flag overrides, and opens the store.
func openSession(opts *RootOptions) (*session, error) {
	cfg, err := model.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitUsage, "loading config", err)
	}
	if opts.Database != "" {
		cfg.Database.Path = opts.Database
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, WrapExitError(ExitUsage, "configuring logging", err)
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path, store.WithLogger(logger))
	if err != nil {
		closer.Close()
		return nil, WrapExitError(ExitFailure, "opening database", err)
	}

	logger.Debug("session opened", "db", cfg.Database.Path)
	return &session{store: st, logger: logger, closer: closer}, nil
}

func (s *session) Close() error {
	err := s.store.Close()
	if cerr := s.closer.Close(); err == nil {
		err = cerr
	}
	return err
}
