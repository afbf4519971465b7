// Package config loads htmlref settings.
//
// # Resolution Order
//
// Each setting is resolved from, lowest to highest precedence:
//
//  1. Built-in defaults
//  2. The TOML file (--config, or ~/.config/htmlref/config.toml)
//  3. HTMLREF_* environment variables
//  4. Command-line flags, applied with Override
//
// A missing config file is not an error; a malformed one is.
//
// # Fields
//
//   - catalog_path (HTMLREF_CATALOG): YAML catalog replacing the bundled reference
//   - log_file (HTMLREF_LOG_FILE): log destination; the TUI logs nowhere without it
//   - log_level (HTMLREF_LOG_LEVEL): debug, info, warn or error (default info)
//   - theme (HTMLREF_THEME): colour theme, overriding the saved preference
//
// # TOML Format
//
//	catalog_path = "~/reference/html.yaml"
//	log_file = "~/.local/state/htmlref/htmlref.log"
//	log_level = "debug"
//	theme = "Kanagawa"
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute.
package config
