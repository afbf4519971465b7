package browse

import (
	"fmt"

	"github.com/five82/htmlref/internal/catalog"
)

// Section headings of the detail page, in render order.
const (
	SectionDescription    = "Описание"
	SectionExample        = "Основной пример"
	SectionExamples       = "Примеры использования"
	SectionAttributes     = "Атрибуты"
	SectionBrowserSupport = "Поддержка браузерами"
	SectionNotes          = "Важные замечания"
)

// Copy for the not-found branch and the return action.
const (
	NotFoundTitle   = "Тег не найден"
	BackLabel       = "Вернуться к справочнику"
	NoAttributes    = "Нет специальных атрибутов"
	notFoundMessage = "Тег \"%s\" не существует в справочнике"
)

// SectionKind tells renderers how to lay out a section body.
type SectionKind int

const (
	KindText SectionKind = iota
	KindCode
	KindExamples
	KindAttributes
	KindNotes
)

// Section is one block of the detail page. Only the fields matching Kind are set.
type Section struct {
	Title      string
	Kind       SectionKind
	Text       string
	Examples   []catalog.Example
	Attributes []catalog.Attribute
	Notes      []string
}

// DetailPage is the logical detail view for one key.
type DetailPage struct {
	Found      bool
	Record     catalog.TagRecord
	Sections   []Section
	MissingKey string
	Message    string // not-found explanation
	BackLabel  string
}

// Detail resolves keys against the catalog.
type Detail struct {
	catalog *catalog.Catalog
}

// NewDetail returns a detail view over c.
func NewDetail(c *catalog.Catalog) *Detail {
	return &Detail{catalog: c}
}

// Resolve looks key up and builds the page. A miss yields the not-found page.
func (d *Detail) Resolve(key string) DetailPage {
	rec, ok := d.catalog.Lookup(key)
	if !ok {
		return DetailPage{
			MissingKey: key,
			Message:    fmt.Sprintf(notFoundMessage, key),
			BackLabel:  BackLabel,
		}
	}
	return DetailPage{
		Found:     true,
		Record:    rec,
		Sections:  sections(rec),
		BackLabel: BackLabel,
	}
}

// Back returns to the list in its default state.
func (d *Detail) Back(nav Navigator) {
	nav.NavigateTo(ListPath)
}

func sections(rec catalog.TagRecord) []Section {
	description := rec.FullDescription
	if description == "" {
		description = rec.Description
	}

	out := []Section{
		{Title: SectionDescription, Kind: KindText, Text: description},
		{Title: SectionExample, Kind: KindCode, Text: rec.Example},
	}
	if len(rec.Examples) > 0 {
		out = append(out, Section{Title: SectionExamples, Kind: KindExamples, Examples: rec.Examples})
	}
	attrs := Section{Title: SectionAttributes, Kind: KindAttributes, Attributes: rec.Attributes}
	if len(rec.Attributes) == 0 {
		attrs.Kind = KindText
		attrs.Text = NoAttributes
	}
	out = append(out,
		attrs,
		Section{Title: SectionBrowserSupport, Kind: KindText, Text: rec.BrowserSupport},
	)
	if rec.HasNotes() {
		out = append(out, Section{Title: SectionNotes, Kind: KindNotes, Notes: rec.Notes})
	}
	return out
}
