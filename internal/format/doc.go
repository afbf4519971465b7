// Package format renders list and detail pages as terminal text and markdown
// for the non-interactive commands, the MCP server and the TUI code blocks.
package format
