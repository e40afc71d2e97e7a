package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/invoicegenius/internal/app"
	"github.com/andy/invoicegenius/internal/domain"
)

// design row indices
const (
	designRowTemplate = iota
	designRowTheme
	designRowFont
	designRowCount
)

// DesignModel lets the user switch template, color theme and font.
// Changes apply and persist immediately; invoice content is untouched.
type DesignModel struct {
	app    *app.App
	cursor int
}

// NewDesignModel creates the design screen
func NewDesignModel(a *app.App) tea.Model {
	return &DesignModel{app: a}
}

func (m *DesignModel) Init() tea.Cmd {
	return nil
}

func (m *DesignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < designRowCount-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Left):
			m.cycle(-1)
		case key.Matches(msg, DefaultKeyMap.Right), key.Matches(msg, DefaultKeyMap.Select):
			m.cycle(1)
		}
	}
	return m, nil
}

// cycle steps the selected setting through its closed value set.
func (m *DesignModel) cycle(dir int) {
	ctx := context.Background()
	design := m.app.Editor.State().Design

	switch m.cursor {
	case designRowTemplate:
		i := indexOf(domain.Templates, design.Template)
		next := domain.Templates[wrap(i+dir, len(domain.Templates))]
		m.app.Editor.SetTemplate(ctx, next)
	case designRowTheme:
		i := indexOf(domain.Themes, design.ColorTheme)
		next := domain.Themes[wrap(i+dir, len(domain.Themes))]
		m.app.Editor.SetColorTheme(ctx, next)
	case designRowFont:
		i := indexOf(domain.Fonts, design.Font)
		next := domain.Fonts[wrap(i+dir, len(domain.Fonts))]
		m.app.Editor.SetFont(ctx, next)
	}
}

func indexOf[T comparable](values []T, v T) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m *DesignModel) View() string {
	design := m.app.Editor.State().Design

	var s string
	s += titleStyle.Render("Design") + "\n\n"

	rows := []struct {
		label string
		value string
	}{
		{"Template", string(design.Template)},
		{"Color Theme", string(design.ColorTheme)},
		{"Font", string(design.Font)},
	}

	for i, row := range rows {
		indicator := "  "
		value := row.value
		if i == m.cursor {
			indicator = "> "
			value = selectedStyle.Render(" " + row.value + " ")
		}
		s += fmt.Sprintf("%s%-14s ← %s →\n", indicator, row.label+":", value)
	}

	s += "\n" + helpStyle.Render("  ↑/↓: move  ←/→: change  p: preview")

	return s
}
