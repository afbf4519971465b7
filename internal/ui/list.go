package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/htmlref/internal/browse"
)

// Rows above the card box: search line, tabs, count line.
const listChromeRows = 3

// cardRows is the height of one rendered card.
const cardRows = 2

// clampSelection keeps the selected card inside the visible set.
func (m *Model) clampSelection() {
	n := len(m.listPage.Cards)
	switch {
	case n == 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	case m.selected < 0:
		m.selected = 0
	}
}

// cardsPerPage is how many cards fit in the card box.
func (m Model) cardsPerPage() int {
	boxInner := m.contentHeight() - listChromeRows - 2
	return max(boxInner/cardRows, 1)
}

// handleListKey processes keyboard input for the list screen.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.listPage.Cards)

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.list.SearchText() != "" {
			m.list.SetSearch("")
			m.searchInput.SetValue("")
			m.selected = 0
			m.refresh()
		}

	case key.Matches(msg, m.keys.NextTab):
		m.list.NextCategory()
		m.selected = 0
		m.refresh()

	case key.Matches(msg, m.keys.PrevTab):
		m.list.PrevCategory()
		m.selected = 0
		m.refresh()

	case key.Matches(msg, m.keys.JumpTab):
		tabs := m.catalog.Categories()
		if i := int(msg.String()[0] - '1'); i < len(tabs) {
			m.list.SelectCategory(tabs[i])
			m.selected = 0
			m.refresh()
		}

	case key.Matches(msg, m.keys.Open):
		m.list.Activate(m.selected, m.navigator())

	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(count-1, 0)
	case key.Matches(msg, m.keys.HalfPageDown), key.Matches(msg, m.keys.PageDown):
		m.selected = min(m.selected+m.cardsPerPage(), max(count-1, 0))
	case key.Matches(msg, m.keys.HalfPageUp), key.Matches(msg, m.keys.PageUp):
		m.selected = max(m.selected-m.cardsPerPage(), 0)
	}

	return m, nil
}

// handleSearchInput handles keyboard input while the search box has focus.
// Every edit is applied to the list immediately.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.list.SearchText() {
		m.list.SetSearch(value)
		m.selected = 0
		m.refresh()
	}
	return m, cmd
}

// renderList renders the list screen: search box, tabs, count and cards.
func (m Model) renderList() string {
	page := m.listPage
	height := m.contentHeight()

	lines := []string{
		m.renderSearchLine(),
		m.renderTabs(page.Tabs),
		m.renderCountLine(page),
	}

	title := m.catalog.AllLabel()
	if page.Heading != "" {
		title = page.Heading
	}
	boxHeight := max(height-listChromeRows, 3)
	innerWidth := m.width - 2

	var content string
	if page.Empty() {
		content = m.renderEmptyState(innerWidth, boxHeight-2)
	} else {
		content = m.renderCards(page.Cards, innerWidth)
	}
	lines = append(lines, m.renderTitledBox(title, content, m.width, boxHeight, !m.searching))

	return strings.Join(lines, "\n")
}

func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	labelStyle := styles.FaintText
	if m.searching {
		labelStyle = styles.AccentText.Bold(true)
	}
	line := bg.Render(" / ", labelStyle) + m.searchInput.View()
	return bg.FillLine(line, m.width)
}

func (m Model) renderTabs(tabs []browse.Tab) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := tab.Label
		if i < 9 {
			label = string(rune('1'+i)) + " " + label
		}
		if tab.Active {
			parts = append(parts, styles.Selected.Bold(true).Padding(0, 1).Render(label))
		} else {
			parts = append(parts, bg.Space()+bg.Render(label, styles.MutedText)+bg.Space())
		}
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, " "), m.width)
}

func (m Model) renderCountLine(page browse.ListPage) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	var parts []string
	if page.Heading != "" {
		parts = append(parts, bg.Render(page.Heading, m.categoryStyle(page.Heading).Bold(true)))
	}
	parts = append(parts, bg.Render(page.CountLabel, styles.MutedText))
	if q := strings.TrimSpace(page.Query); q != "" {
		parts = append(parts, bg.Render("«"+truncate(q, 30)+"»", styles.AccentText))
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, "  ·  "), m.width)
}

func (m Model) renderEmptyState(width, height int) string {
	styles := m.theme.Styles()
	msg := styles.Text.Bold(true).Render(browse.EmptyTitle) + "\n" +
		styles.MutedText.Render(browse.EmptyHint)
	return lipgloss.Place(width, max(height, 2), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(msg, "\n")...))
}

// renderCards renders the window of cards that keeps the selection visible.
func (m Model) renderCards(cards []browse.Card, width int) string {
	perPage := m.cardsPerPage()
	start := 0
	if m.selected >= perPage {
		start = m.selected - perPage + 1
	}
	end := min(start+perPage, len(cards))

	lines := make([]string, 0, (end-start)*cardRows)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderCard(cards[i], width, i == m.selected)...)
	}
	return strings.Join(lines, "\n")
}

// renderCard formats one card as two lines:
//
//	<name>  Category  attr attr
//	description · example
func (m Model) renderCard(card browse.Card, width int, selected bool) []string {
	bgColor := m.theme.FocusBg
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	nameStyle := styles.AccentText.Bold(true)
	textStyle := styles.Text
	faintStyle := styles.FaintText
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = sel.Bold(true)
		textStyle = sel
		faintStyle = sel
	}

	head := bg.Space() + bg.Render("<"+card.Name+">", nameStyle)
	if card.Category != "" {
		head += bg.Spaces(2) + styles.BadgeStyle(m.categoryColor(card.Category)).Render(card.Category)
	}
	if len(card.Attributes) > 0 {
		used := lipgloss.Width(head) + 2
		attrs := truncate(strings.Join(card.Attributes, " "), max(width-used-1, 0))
		head += bg.Spaces(2) + bg.Render(attrs, faintStyle)
	}

	body := card.Description
	if ex := firstLine(card.Example); ex != "" {
		body += "  ·  " + ex
	}
	body = bg.Spaces(3) + bg.Render(truncate(body, max(width-4, 0)), textStyle)

	return []string{bg.FillLine(head, width), bg.FillLine(body, width)}
}

// categoryColor returns the badge color of a category label.
func (m Model) categoryColor(label string) string {
	i := slices.Index(m.catalog.Categories(), label)
	return m.theme.CategoryColor(i - 1)
}

func (m Model) categoryStyle(label string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.categoryColor(label)))
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
