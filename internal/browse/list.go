package browse

import (
	"fmt"
	"slices"

	"github.com/five82/htmlref/internal/catalog"
	"github.com/five82/htmlref/internal/filter"
)

// Empty-state copy shown when no card survives the filters.
const (
	EmptyTitle = "Ничего не найдено"
	EmptyHint  = "Попробуйте изменить поисковый запрос"
)

// Tab is one category tab of the list page.
type Tab struct {
	Label  string
	Active bool
}

// Card is the summary of one visible record.
type Card struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"` // empty when a specific tab is active
	Description string   `json:"description"`
	Example     string   `json:"example"`
	Attributes  []string `json:"attributes,omitempty"`
}

// ListPage is the logical list view for one state.
type ListPage struct {
	Query      string
	Tabs       []Tab
	Heading    string // category label; empty under the all tab
	CountLabel string
	Count      int
	Cards      []Card
}

// Empty reports whether the page shows the empty state instead of cards.
func (p ListPage) Empty() bool {
	return len(p.Cards) == 0
}

// List owns the search text and the selected category tab.
type List struct {
	catalog  *catalog.Catalog
	search   string
	category string
}

// NewList returns a list in its default state: no search text, all tab.
func NewList(c *catalog.Catalog) *List {
	return &List{catalog: c, category: c.AllLabel()}
}

// Reset restores the default state.
func (l *List) Reset() {
	l.search = ""
	l.category = l.catalog.AllLabel()
}

// SearchText returns the current search text.
func (l *List) SearchText() string {
	return l.search
}

// SetSearch stores text verbatim.
func (l *List) SetSearch(text string) {
	l.search = text
}

// Category returns the active tab label.
func (l *List) Category() string {
	return l.category
}

// SelectCategory activates the tab with the given label. Labels outside the
// category set are ignored and reported as false.
func (l *List) SelectCategory(label string) bool {
	if !l.catalog.HasCategory(label) {
		return false
	}
	l.category = label
	return true
}

// NextCategory activates the tab after the current one, wrapping around.
func (l *List) NextCategory() {
	l.shiftCategory(1)
}

// PrevCategory activates the tab before the current one, wrapping around.
func (l *List) PrevCategory() {
	l.shiftCategory(-1)
}

func (l *List) shiftCategory(delta int) {
	tabs := l.catalog.Categories()
	i := slices.Index(tabs, l.category)
	if i < 0 {
		i = 0
	}
	i = (i + delta + len(tabs)) % len(tabs)
	l.category = tabs[i]
}

// Visible returns the records that pass the current filters.
func (l *List) Visible() []catalog.TagRecord {
	return filter.ComputeVisible(l.catalog.Records(), l.catalog.AllLabel(), l.category, l.search)
}

// Page derives the list view from the current state. It is recomputed on
// every call.
func (l *List) Page() ListPage {
	visible := l.Visible()
	specific := l.category != l.catalog.AllLabel()

	page := ListPage{
		Query: l.search,
		Count: len(visible),
		Cards: make([]Card, len(visible)),
	}
	for _, label := range l.catalog.Categories() {
		page.Tabs = append(page.Tabs, Tab{Label: label, Active: label == l.category})
	}
	if specific {
		page.Heading = l.category
		page.CountLabel = fmt.Sprintf("Теги в категории: %d", len(visible))
	} else {
		page.CountLabel = fmt.Sprintf("Найдено тегов: %d", len(visible))
	}

	for i, rec := range visible {
		card := Card{
			Name:        rec.Name,
			Description: rec.Description,
			Example:     rec.Example,
			Attributes:  rec.AttributeNames(),
		}
		if !specific {
			card.Category = rec.Category
		}
		page.Cards[i] = card
	}
	return page
}

// Activate navigates to the detail view of the card at index in the current
// page. It reports false when index is out of range.
func (l *List) Activate(index int, nav Navigator) bool {
	visible := l.Visible()
	if index < 0 || index >= len(visible) {
		return false
	}
	nav.NavigateTo(DetailPath(visible[index].Name))
	return true
}
