package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/format"
)

// initDetailViewport initializes the detail viewport.
func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(max(m.width-4, 1), max(m.contentHeight()-2, 1))
	m.detailViewport.Style = lipgloss.NewStyle()
}

// updateDetailViewport renders the current detail page into the viewport.
func (m *Model) updateDetailViewport() {
	if !m.ready || !m.detailPage.Found {
		return
	}

	// Box inner area: two border columns, two border rows
	m.detailViewport.Width = max(m.width-4, 1)
	m.detailViewport.Height = max(m.contentHeight()-2, 1)
	m.detailViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	m.detailViewport.SetContent(m.renderDetailContent(m.detailViewport.Width))
}

// renderDetailContent renders the detail page as styled markdown.
func (m Model) renderDetailContent(width int) string {
	style := m.markdownStyle
	if style == "" {
		style = m.theme.MarkdownStyle
	}
	md := format.DetailMarkdown(m.detailPage)
	return strings.TrimRight(format.RenderMarkdown(md, style, width), "\n")
}

// handleDetailKey processes keyboard input for the detail and not-found screens.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.detail.Back(m.navigator())
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.detailViewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.detailViewport.PageUp()
	}
	return m, nil
}

// renderDetail renders the detail screen.
func (m Model) renderDetail() string {
	rec := m.detailPage.Record
	title := "<" + rec.Name + "> · " + rec.Category
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, m.contentHeight(), true)
}

// renderNotFound renders the centred not-found message with the way back.
func (m Model) renderNotFound() string {
	styles := m.theme.Styles()
	page := m.detailPage

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render(browse.NotFoundTitle),
		"",
		styles.Text.Render(page.Message),
		"",
		styles.AccentText.Render("esc")+" "+styles.MutedText.Render("← "+page.BackLabel),
	)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, body)
}
