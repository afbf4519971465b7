package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/htmlref/internal/app"
)

var (
	version = "dev"
	commit  = "none"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "htmlref: %v\n", err)
		}
		return 1
	}
	return 0
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	prefsPath   string
	catalogPath string
	logFile     string
	logLevel    string
}

func (f *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath:  f.configPath,
		PrefsPath:   f.prefsPath,
		CatalogPath: f.catalogPath,
		LogFile:     f.logFile,
		LogLevel:    f.logLevel,
		Version:     version,
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var route string

	cmd := &cobra.Command{
		Use:   "htmlref",
		Short: "Browse the HTML tag reference",
		Long: `htmlref is a searchable reference of common HTML tags.

Without a subcommand it opens the terminal browser: search by name or
description, switch categories, and open a tag for its full page.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options()
			opts.Route = route
			return app.Run(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file path (TOML, default ~/.config/htmlref/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "Preferences file path (default ~/.config/htmlref/prefs.toml)")
	pf.StringVar(&flags.catalogPath, "catalog", "", "Catalog YAML replacing the bundled reference")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&route, "route", "", "Start at this address, e.g. /tag/p")

	cmd.AddCommand(
		newListCmd(flags),
		newShowCmd(flags),
		newCategoriesCmd(flags),
		newMCPCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "htmlref version %s (commit: %s)\n", version, commit)
		},
	}
}
