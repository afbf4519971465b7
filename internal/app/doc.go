// Package app wires configuration, logging and the catalog to the htmlref
// surfaces.
//
// Setup is the composition root shared by every command:
//
//  1. config.Load reads the TOML file and HTMLREF_* environment variables
//  2. Command-line values are applied on top with Config.Override
//  3. A slog text logger is opened on the log file, or on the caller's fallback
//  4. The catalog is loaded from catalog_path, or the bundled reference
//
// Run starts the terminal browser and ServeMCP the MCP server. The CLI
// commands in cmd/htmlref call Setup directly and format the browse views
// themselves.
//
// The TUI owns the terminal, so its fallback log writer discards output; the
// theme comes from config when set, otherwise from the saved preferences.
package app
