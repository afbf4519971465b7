package browse

import (
	"slices"
	"testing"

	"github.com/five82/htmlref/internal/catalog"
)

func newDetail(t *testing.T) *Detail {
	t.Helper()
	c, err := catalog.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	return NewDetail(c)
}

func sectionTitles(page DetailPage) []string {
	out := make([]string, len(page.Sections))
	for i, s := range page.Sections {
		out[i] = s.Title
	}
	return out
}

func TestDetail_FoundParagraph(t *testing.T) {
	page := newDetail(t).Resolve("p")
	if !page.Found || page.Record.Name != "p" {
		t.Fatalf("Resolve(p) = %+v, want found p", page)
	}
	want := []string{SectionDescription, SectionExample, SectionExamples, SectionAttributes, SectionBrowserSupport, SectionNotes}
	if got := sectionTitles(page); !slices.Equal(got, want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	if page.Sections[0].Text != page.Record.FullDescription {
		t.Fatalf("description section = %q", page.Sections[0].Text)
	}
	if page.Sections[1].Kind != KindCode || page.Sections[1].Text != "<p>Параграф</p>" {
		t.Fatalf("example section = %+v", page.Sections[1])
	}
	if len(page.Sections[2].Examples) != 2 {
		t.Fatalf("examples = %+v", page.Sections[2].Examples)
	}
	if page.BackLabel != BackLabel {
		t.Fatalf("BackLabel = %q", page.BackLabel)
	}
}

func TestDetail_EveryNameResolves(t *testing.T) {
	d := newDetail(t)
	for _, rec := range catalog.MustReference().Records() {
		page := d.Resolve(rec.Name)
		if !page.Found || page.Record.Name != rec.Name {
			t.Fatalf("Resolve(%q) found=%v name=%q", rec.Name, page.Found, page.Record.Name)
		}
	}
}

func TestDetail_NotFound(t *testing.T) {
	page := newDetail(t).Resolve("nonexistent-tag")
	if page.Found {
		t.Fatalf("Resolve(nonexistent-tag) found a record")
	}
	if page.MissingKey != "nonexistent-tag" {
		t.Fatalf("MissingKey = %q", page.MissingKey)
	}
	if page.Message != `Тег "nonexistent-tag" не существует в справочнике` {
		t.Fatalf("Message = %q", page.Message)
	}
	if page.BackLabel != "Вернуться к справочнику" || len(page.Sections) != 0 {
		t.Fatalf("not-found page = %+v", page)
	}
}

func TestDetail_EmptyAttributesKeepsSection(t *testing.T) {
	page := newDetail(t).Resolve("br")
	i := slices.Index(sectionTitles(page), SectionAttributes)
	if i < 0 {
		t.Fatalf("attributes section missing for br")
	}
	if s := page.Sections[i]; s.Kind != KindText || s.Text != NoAttributes {
		t.Fatalf("attributes section = %+v, want no-attributes note", s)
	}
}

func TestDetail_OptionalSectionsOmitted(t *testing.T) {
	// main has no titled examples; span has no notes.
	d := newDetail(t)
	if slices.Contains(sectionTitles(d.Resolve("main")), SectionExamples) {
		t.Fatalf("main renders an empty examples section")
	}
	if slices.Contains(sectionTitles(d.Resolve("span")), SectionNotes) {
		t.Fatalf("span renders an empty notes section")
	}
}

func TestDetail_SummaryOnlyRecordFallsBack(t *testing.T) {
	c, err := catalog.New("all", []string{"A"}, []catalog.TagRecord{{Name: "x", Category: "A", Description: "short"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	page := NewDetail(c).Resolve("x")
	if page.Sections[0].Text != "short" {
		t.Fatalf("description = %q, want fallback to short description", page.Sections[0].Text)
	}
	want := []string{SectionDescription, SectionExample, SectionAttributes, SectionBrowserSupport}
	if got := sectionTitles(page); !slices.Equal(got, want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
}

func TestDetail_Back(t *testing.T) {
	var nav recorder
	newDetail(t).Back(&nav)
	if !slices.Equal(nav.paths, []string{ListPath}) {
		t.Fatalf("Back navigated to %v, want [/]", nav.paths)
	}
}
