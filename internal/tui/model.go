package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/invoicegenius/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenWorkspace Screen = iota
	ScreenDesign
	ScreenPreview
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenWorkspace:
		return "Workspace"
	case ScreenDesign:
		return "Design"
	case ScreenPreview:
		return "Preview"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	workspace tea.Model
	design    tea.Model
	preview   tea.Model
	settings  tea.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	workspace := NewWorkspaceModel(a)
	return Model{
		app:           a,
		currentScreen: ScreenWorkspace,
		workspace:     workspace,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.workspace != nil {
		return m.workspace.Init()
	}
	return nil
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens re-read state.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenWorkspace:
		if m.workspace == nil {
			m.workspace = NewWorkspaceModel(m.app)
			return m.workspace.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenDesign:
		if m.design == nil {
			m.design = NewDesignModel(m.app)
			return m.design.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenPreview:
		if m.preview == nil {
			m.preview = NewPreviewModel(m.app)
			return m.preview.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenSettings:
		if m.settings == nil {
			m.settings = NewSettingsModel(m.app)
			return m.settings.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (W, D, P, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreen returns the model for the current screen
func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenWorkspace:
		return m.workspace
	case ScreenDesign:
		return m.design
	case ScreenPreview:
		return m.preview
	case ScreenSettings:
		return m.settings
	}
	return nil
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				// Every edit is already persisted; quitting loses nothing
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Workspace):
				m.currentScreen = ScreenWorkspace
				return m, m.initScreen(ScreenWorkspace)

			case key.Matches(msg, DefaultKeyMap.Design):
				m.currentScreen = ScreenDesign
				return m, m.initScreen(ScreenDesign)

			case key.Matches(msg, DefaultKeyMap.Preview):
				m.currentScreen = ScreenPreview
				return m, m.initScreen(ScreenPreview)

			case key.Matches(msg, DefaultKeyMap.Settings):
				m.currentScreen = ScreenSettings
				return m, m.initScreen(ScreenSettings)
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		return m, m.initScreen(msg.Screen)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenWorkspace:
		if m.workspace != nil {
			m.workspace, cmd = m.workspace.Update(msg)
		}
	case ScreenDesign:
		if m.design != nil {
			m.design, cmd = m.design.Update(msg)
		}
	case ScreenPreview:
		if m.preview != nil {
			m.preview, cmd = m.preview.Update(msg)
		}
	case ScreenSettings:
		if m.settings != nil {
			m.settings, cmd = m.settings.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("invoicegenius - %s", m.currentScreen.String()))
	footer := footerStyle.Render("[W]orkspace  [D]esign  [P]review  [,] Settings  [Q]uit")

	content := "Loading..."
	if screen := m.activeScreen(); screen != nil {
		content = screen.View()
	}

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
