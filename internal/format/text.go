package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/catalog"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// ListText renders a list page for plain terminal output.
func ListText(page browse.ListPage) string {
	var sb strings.Builder

	if page.Heading != "" {
		sb.WriteString(bold(page.Heading))
		sb.WriteString("\n")
	}
	sb.WriteString(faint(page.CountLabel))
	sb.WriteString("\n")

	if page.Empty() {
		fmt.Fprintf(&sb, "\n  %s\n  %s\n", bold(browse.EmptyTitle), faint(browse.EmptyHint))
		return sb.String()
	}

	for _, card := range page.Cards {
		sb.WriteString("\n")
		sb.WriteString(CardText(card))
	}
	return sb.String()
}

// CardText renders one summary card.
func CardText(card browse.Card) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %s", cyan(bold("<"+card.Name+">")))
	if card.Category != "" {
		fmt.Fprintf(&sb, "  %s", faint("["+card.Category+"]"))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "    %s\n", card.Description)
	fmt.Fprintf(&sb, "    %s\n", faint(card.Example))
	if len(card.Attributes) > 0 {
		fmt.Fprintf(&sb, "    %s %s\n", faint("Атрибуты:"), strings.Join(card.Attributes, ", "))
	}
	return sb.String()
}

// CategoryText renders the category tabs with their record totals.
func CategoryText(all string, total int, counts []catalog.CategoryCount) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %s %s\n", cyan(all), faint(fmt.Sprintf("(%d)", total)))
	for _, cc := range counts {
		fmt.Fprintf(&sb, "  %s %s\n", cyan(cc.Label), faint(fmt.Sprintf("(%d)", cc.Count)))
	}
	return sb.String()
}

// NotFoundText renders the not-found branch of the detail view.
func NotFoundText(page browse.DetailPage) string {
	return fmt.Sprintf("%s %s\n%s\n", red("✗"), bold(browse.NotFoundTitle), page.Message)
}
