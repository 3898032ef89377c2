package tui

import (
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
)

type styles struct {
	title     lipgloss.Style
	item      lipgloss.Style
	starred   lipgloss.Style
	completed lipgloss.Style
	cursor    lipgloss.Style
	snackbar  lipgloss.Style
	status    lipgloss.Style
	errStatus lipgloss.Style
	help      lipgloss.Style
}

type palette struct {
	text, dim, accent, star, snackFg, snackBg, err lipgloss.Color
}

var (
	lightPalette = palette{
		text:    "235",
		dim:     "245",
		accent:  "62",
		star:    "166",
		snackFg: "255",
		snackBg: "238",
		err:     "160",
	}
	darkPalette = palette{
		text:    "252",
		dim:     "240",
		accent:  "86",
		star:    "214",
		snackFg: "235",
		snackBg: "250",
		err:     "196",
	}
)

func stylesFor(theme string) styles {
	p := lightPalette
	if theme == config.ThemeDark {
		p = darkPalette
	}
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		item:      lipgloss.NewStyle().Foreground(p.text),
		starred:   lipgloss.NewStyle().Bold(true).Foreground(p.star),
		completed: lipgloss.NewStyle().Strikethrough(true).Foreground(p.dim),
		cursor:    lipgloss.NewStyle().Foreground(p.accent),
		snackbar:  lipgloss.NewStyle().Foreground(p.snackFg).Background(p.snackBg).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(p.dim),
		errStatus: lipgloss.NewStyle().Foreground(p.err),
		help:      lipgloss.NewStyle().Foreground(p.dim),
	}
}

func nextTheme(theme string) string {
	if theme == config.ThemeDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}
