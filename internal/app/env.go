package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/htmlref/internal/catalog"
	"github.com/five82/htmlref/internal/config"
)

// Env is the loaded configuration, logger and catalog shared by every
// command.
type Env struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger

	logFile *os.File
}

// Setup resolves configuration, opens the logger and loads the catalog. Logs
// go to the configured log file, or to fallback when none is set.
func Setup(opts Options, fallback io.Writer) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Override(opts.CatalogPath, opts.LogFile, opts.LogLevel); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	env := &Env{Config: cfg}

	w := fallback
	if w == nil {
		w = io.Discard
	}
	if cfg.LogFile != "" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		env.logFile = f
		w = f
	}
	env.Logger = NewLogger(w, cfg.LogLevel)
	slog.SetDefault(env.Logger)

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	env.Catalog = c

	source := cfg.CatalogPath
	if source == "" {
		source = "bundled"
	}
	env.Logger.Debug("catalog loaded", "source", source, "records", c.Len(), "categories", len(c.Partitions()))

	return env, nil
}

// Close releases the log file, if one was opened.
func (e *Env) Close() error {
	if e == nil || e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
