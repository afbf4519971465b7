package app

import (
	"context"
	"fmt"
	"io"

	"github.com/five82/htmlref/internal/mcp"
	"github.com/five82/htmlref/internal/prefs"
	"github.com/five82/htmlref/internal/ui"
)

// Options configure an htmlref run. Empty values fall back to the config
// file, environment and defaults.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses ~/.config/htmlref/prefs.toml
	CatalogPath string
	LogFile     string
	LogLevel    string
	Route       string // TUI starting address
	Version     string
}

// Run boots the TUI until the user quits or the context is cancelled.
// Logs are discarded unless a log file is configured, since the terminal
// belongs to the UI.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts, io.Discard)
	if err != nil {
		return err
	}
	defer env.Close()

	themeName := env.Config.Theme
	if themeName == "" {
		userPrefs, err := prefs.Load(opts.PrefsPath)
		if err != nil {
			return fmt.Errorf("load prefs: %w", err)
		}
		themeName = userPrefs.Theme
	}

	env.Logger.Info("htmlref starting",
		"version", opts.Version,
		"records", env.Catalog.Len(),
		"theme", themeName,
		"route", opts.Route)

	return ui.Run(ui.Options{
		Context:   ctx,
		Catalog:   env.Catalog,
		Route:     opts.Route,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
		Logger:    env.Logger,
	})
}

// ServeMCP runs the MCP server on stdio. stdout carries the protocol, so logs
// go to stderr or the configured log file.
func ServeMCP(ctx context.Context, opts Options, stderr io.Writer) error {
	env, err := Setup(opts, stderr)
	if err != nil {
		return err
	}
	defer env.Close()

	server := mcp.NewServer(env.Catalog, opts.Version, env.Logger)
	if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
