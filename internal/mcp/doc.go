// Package mcp serves the HTML reference over the Model Context Protocol.
//
// Tools:
//
//   - search_tags {query?, category?}: summary cards of the visible records
//   - get_tag {name}: the full record; an unknown name is a tool error result
//   - list_categories: category labels with record counts
//
// Resources are addressed as htmlref://tag/{name} and rendered as markdown.
// Handlers only read the immutable catalog, so they are safe to run
// concurrently.
package mcp
