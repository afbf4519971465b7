package format

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/catalog"
)

func init() {
	color.NoColor = true
}

func TestDetailMarkdown_Found(t *testing.T) {
	page := browse.NewDetail(catalog.MustReference()).Resolve("p")
	md := DetailMarkdown(page)

	order := []string{
		"# `<p>`",
		"## Описание",
		"## Основной пример",
		"```html\n<p>Параграф</p>\n```",
		"## Примеры использования",
		"### Несколько абзацев",
		"## Атрибуты",
		"- `class`: CSS-классы элемента",
		"## Поддержка браузерами",
		"## Важные замечания",
	}
	pos := 0
	for _, want := range order {
		i := strings.Index(md[pos:], want)
		if i < 0 {
			t.Fatalf("markdown missing %q after offset %d:\n%s", want, pos, md)
		}
		pos += i + len(want)
	}
}

func TestDetailMarkdown_NoAttributesNote(t *testing.T) {
	md := DetailMarkdown(browse.NewDetail(catalog.MustReference()).Resolve("br"))
	if !strings.Contains(md, "## Атрибуты\n\n"+browse.NoAttributes) {
		t.Fatalf("markdown lacks no-attributes note:\n%s", md)
	}
}

func TestDetailMarkdown_NotFound(t *testing.T) {
	md := DetailMarkdown(browse.NewDetail(catalog.MustReference()).Resolve("nonexistent-tag"))
	for _, want := range []string{browse.NotFoundTitle, `"nonexistent-tag"`, browse.BackLabel} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderMarkdown_ProducesText(t *testing.T) {
	out := RenderMarkdown("```html\n<hr />\n```\n", "notty", 40)
	if !strings.Contains(out, "<hr />") {
		t.Fatalf("rendered output lost the snippet: %q", out)
	}
}

func TestListText(t *testing.T) {
	l := browse.NewList(catalog.MustReference())
	l.SelectCategory("Медиа")
	out := ListText(l.Page())

	for _, want := range []string{"Медиа", "Теги в категории: 3", "<img>", "<video>", "<audio>", "Атрибуты: src, alt, width, height"} {
		if !strings.Contains(out, want) {
			t.Fatalf("ListText missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[Медиа]") {
		t.Fatalf("ListText shows a category badge under a specific tab:\n%s", out)
	}
}

func TestListText_Empty(t *testing.T) {
	l := browse.NewList(catalog.MustReference())
	l.SetSearch("zzzznotfound")
	out := ListText(l.Page())
	if !strings.Contains(out, browse.EmptyTitle) || !strings.Contains(out, browse.EmptyHint) {
		t.Fatalf("ListText empty state missing:\n%s", out)
	}
}

func TestCategoryText(t *testing.T) {
	c := catalog.MustReference()
	out := CategoryText(c.AllLabel(), c.Len(), c.CountByCategory())
	for _, want := range []string{"Все теги (30)", "Формы (5)", "Медиа (3)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("CategoryText missing %q:\n%s", want, out)
		}
	}
}

func TestNotFoundText(t *testing.T) {
	out := NotFoundText(browse.NewDetail(catalog.MustReference()).Resolve("blink"))
	if !strings.Contains(out, `Тег "blink" не существует в справочнике`) {
		t.Fatalf("NotFoundText = %q", out)
	}
}
