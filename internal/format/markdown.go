package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/five82/htmlref/internal/browse"
)

// DetailMarkdown renders a detail page as markdown. Code is fenced as HTML so
// renderers can highlight it.
func DetailMarkdown(page browse.DetailPage) string {
	var b strings.Builder

	if !page.Found {
		fmt.Fprintf(&b, "# %s\n\n%s\n\n← %s\n", browse.NotFoundTitle, page.Message, page.BackLabel)
		return b.String()
	}

	rec := page.Record
	fmt.Fprintf(&b, "# `<%s>`\n\n*%s*\n", rec.Name, rec.Category)

	for _, s := range page.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		switch s.Kind {
		case browse.KindCode:
			writeFence(&b, s.Text)
		case browse.KindExamples:
			for _, ex := range s.Examples {
				fmt.Fprintf(&b, "### %s\n\n", ex.Title)
				writeFence(&b, ex.Code)
			}
		case browse.KindAttributes:
			for _, attr := range s.Attributes {
				fmt.Fprintf(&b, "- `%s`: %s\n", attr.Name, attr.Description)
			}
		case browse.KindNotes:
			for _, note := range s.Notes {
				fmt.Fprintf(&b, "- %s\n", note)
			}
		default:
			fmt.Fprintf(&b, "%s\n", s.Text)
		}
	}
	return b.String()
}

func writeFence(b *strings.Builder, code string) {
	b.WriteString("```html\n")
	b.WriteString(strings.TrimRight(code, "\n"))
	b.WriteString("\n```\n")
}

// RenderMarkdown renders markdown for a terminal. An empty style lets glamour
// detect the terminal background; width <= 0 disables wrapping. On renderer
// failure the markdown is returned unchanged.
func RenderMarkdown(md string, style string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 0))}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
