// Package browse implements the list and detail views of the reference as
// plain values, independent of any renderer.
//
// List owns the transient UI state (search text and selected category tab) and
// derives a ListPage from it on every call to Page. Detail resolves a tag key
// into a DetailPage, taking the not-found branch for unknown keys. Renderers
// (the terminal UI, the CLI printer, the MCP server) only format these pages.
//
// Navigation is injected: views call Navigator.NavigateTo with an address
// built by DetailPath or ListPath, and ParseRoute turns an address back into a
// Route. Addresses are untrusted input.
package browse
