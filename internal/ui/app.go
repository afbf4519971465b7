package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/catalog"
	"github.com/five82/htmlref/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *catalog.Catalog
	Route     string // starting address; empty means the list
	ThemeName string
	PrefsPath string
	Logger    *slog.Logger

	// MarkdownStyle overrides the theme's glamour style for detail pages.
	MarkdownStyle string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	catalog       *catalog.Catalog
	prefsPath     string
	markdownStyle string
	logger        *slog.Logger
	keys          keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Navigation
	route  browse.Route
	list   *browse.List
	detail *browse.Detail

	// Derived pages, recomputed by refresh after every transition
	listPage   browse.ListPage
	detailPage browse.DetailPage

	// List state
	selected    int
	searchInput textinput.Model
	searching   bool

	// Detail state
	detailViewport viewport.Model

	// Help overlay
	showHelp bool

	// Transient status shown in the header
	errorMsg string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	c := opts.Catalog
	if c == nil {
		c = catalog.MustReference()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Поиск тегов..."
	ti.Prompt = ""
	ti.CharLimit = 100

	m := Model{
		catalog:       c,
		prefsPath:     prefsPath,
		markdownStyle: opts.MarkdownStyle,
		logger:        logger,
		keys:          DefaultKeyMap(),
		theme:         GetTheme(opts.ThemeName),
		list:          browse.NewList(c),
		detail:        browse.NewDetail(c),
		searchInput:   ti,
	}
	m.route = browse.ParseRoute(opts.Route)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.refresh()
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Загрузка..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// NavigateTo moves the UI to path. Arriving at the list restores its default
// state; unknown or malformed paths land on the list.
func (m *Model) NavigateTo(path string) {
	m.route = browse.ParseRoute(path)
	m.logger.Debug("navigate", "path", m.route.Path())

	if m.route.Page == browse.PageList {
		m.list.Reset()
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.searching = false
		m.selected = 0
	}
	m.refresh()
	m.detailViewport.GotoTop()
}

// refresh recomputes the derived page for the current route.
func (m *Model) refresh() {
	switch m.route.Page {
	case browse.PageDetail:
		m.detailPage = m.detail.Resolve(m.route.Key)
		m.updateDetailViewport()
	default:
		m.listPage = m.list.Page()
		m.clampSelection()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if m.route.Page == browse.PageDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// cycleTheme switches to the next theme and remembers the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.errorMsg = ""
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
			m.errorMsg = "тема не сохранена"
		}
	}
	m.refresh()
}

// navigator returns the Navigator handed to the browse views.
func (m *Model) navigator() browse.Navigator {
	return m
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + m.renderContent()
}

// renderContent renders the main content area based on the current route.
func (m Model) renderContent() string {
	if m.route.Page == browse.PageDetail {
		if !m.detailPage.Found {
			return m.renderNotFound()
		}
		return m.renderDetail()
	}
	return m.renderList()
}

// contentHeight is the height left below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 3)
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
