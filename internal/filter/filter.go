// Package filter computes the visible subset of the tag catalog for a category
// tab and a search query.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/htmlref/internal/catalog"
)

// ComputeVisible returns the records that belong to category and whose name or
// description contains query, ignoring case. The all label disables the
// category filter; a blank query disables the text filter. The result keeps
// catalog order and never shares a backing array with records.
func ComputeVisible(records []catalog.TagRecord, all, category, query string) []catalog.TagRecord {
	out := make([]catalog.TagRecord, 0, len(records))

	byCategory := category != all
	byText := !IsBlank(query)

	// Caser values are stateful, so each call folds with its own.
	fold := cases.Fold()
	var needle string
	if byText {
		needle = fold.String(query)
	}

	for _, rec := range records {
		if byCategory && rec.Category != category {
			continue
		}
		if byText && !matches(fold, rec, needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// IsBlank reports whether query is empty or only whitespace.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

func matches(fold cases.Caser, rec catalog.TagRecord, needle string) bool {
	return strings.Contains(fold.String(rec.Name), needle) ||
		strings.Contains(fold.String(rec.Description), needle)
}
