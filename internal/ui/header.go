package ui

import (
	"fmt"
	"strings"

	"github.com/five82/htmlref/internal/browse"
)

// renderHeader renders the status bar: logo, catalog size and location.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("htmlref", styles.Logo),
		bg.Render("Справочник HTML тегов", styles.Text),
		bg.Render("Тегов:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", m.catalog.Len()), styles.Text),
	}

	switch {
	case m.route.Page == browse.PageDetail && m.detailPage.Found:
		parts = append(parts, bg.Render("<"+m.detailPage.Record.Name+">", styles.AccentText))
	case m.route.Page == browse.PageDetail:
		parts = append(parts, bg.Render(browse.NotFoundTitle, styles.DangerText))
	default:
		parts = append(parts, bg.Render(m.list.Category(), styles.AccentText))
	}

	if m.errorMsg != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.errorMsg, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Готово"},
			{"esc", "Выйти из поиска"},
			{"ctrl+c", "Выход"},
		}
	case m.route.Page == browse.PageDetail:
		commands = []cmd{
			{"esc/b", "Назад"},
			{"j/k", "Прокрутка"},
			{"g/G", "Начало/конец"},
			{"?", "Справка"},
			{"q", "Выход"},
		}
	default:
		commands = []cmd{
			{"/", "Поиск"},
			{"tab", "Категория"},
			{"j/k", "Навигация"},
			{"enter", "Открыть"},
			{"?", "Справка"},
			{"q", "Выход"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
