package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/invoicegenius/internal/app"
	"github.com/andy/invoicegenius/internal/render"
)

// previewCols is the character width of the projected page.
const previewCols = 96

// previewRowPx is how many page pixels one terminal row covers.
const previewRowPx = 24.0

// PreviewModel shows a character projection of the rendered page. It
// re-renders from current state every time it becomes visible, so the
// preview always reflects the latest edit.
type PreviewModel struct {
	app  *app.App
	page string
}

// NewPreviewModel creates the preview screen
func NewPreviewModel(a *app.App) tea.Model {
	m := &PreviewModel{app: a}
	m.refresh()
	return m
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

func (m *PreviewModel) refresh() {
	state := m.app.Editor.State()
	doc := render.Render(state.Invoice, state.Company, state.Design, m.app.Formatter())
	m.page = project(doc, previewCols)
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case RefreshDataMsg:
		m.refresh()
	}
	return m, nil
}

func (m *PreviewModel) View() string {
	design := m.app.Editor.State().Design

	var s string
	s += titleStyle.Render("Preview") + "  " +
		subtitleStyle.Render(fmt.Sprintf("%s / %s / %s", design.Template, design.ColorTheme, design.Font)) + "\n\n"
	s += m.page
	s += "\n" + helpStyle.Render("  w: back to workspace  d: design")
	return s
}

// project flattens the document's text elements onto a character grid.
// Colors, rules and gradients are dropped; this is a content check, the
// PDF export is the faithful rendition.
func project(doc *render.Document, cols int) string {
	scaleX := float64(cols) / doc.Width
	rows := int(doc.Height/previewRowPx) + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	for _, e := range doc.Elements {
		if e.Kind != render.KindText {
			continue
		}
		row := int(e.Y / previewRowPx)
		if row < 0 || row >= rows {
			continue
		}
		text := []rune(e.Text)
		col := int(e.X * scaleX)
		switch e.Align {
		case render.AlignRight:
			col -= len(text)
		case render.AlignCenter:
			col -= len(text) / 2
		}
		for i, r := range text {
			x := col + i
			if x < 0 || x >= cols {
				continue
			}
			grid[row][x] = r
		}
	}

	// Drop trailing blank rows
	last := rows - 1
	for last > 0 && strings.TrimSpace(string(grid[last])) == "" {
		last--
	}

	lines := make([]string, 0, last+1)
	for _, r := range grid[:last+1] {
		lines = append(lines, "  "+strings.TrimRight(string(r), " "))
	}
	return strings.Join(lines, "\n")
}
