// Package ui provides the terminal browser for the HTML tag reference.
//
// The UI is a Bubble Tea program. Model holds a route (the list or one tag)
// and the browse views for it; after every transition the derived page is
// recomputed, so View only formats values produced by the browse package.
//
// # Screens
//
//   - List: search box, category tabs, count line and a scrolling card list
//   - Detail: the tag page rendered through glamour in a scrollable viewport
//   - Not found: the missing key and the way back to the list
//
// Leaving a detail page returns to the list in its default state, with the
// search cleared and the all-categories tab active.
//
// # Key Bindings
//
//   - /: focus the search box (enter or esc leaves it, keeping the text)
//   - esc: clear the search on the list, go back from a tag page
//   - tab/shift+tab, ←/→, 1-9: switch category tabs
//   - j/k, g/G, ctrl+d/ctrl+u: move the selection or scroll
//   - enter: open the selected tag
//   - b, backspace: back to the list
//   - T: cycle theme (saved to prefs)
//   - ?: help
//   - q, ctrl+c: quit (q is typed into the search box while it has focus)
package ui
