package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/invoicegenius/internal/app"
	"golang.org/x/text/language"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldLocale = iota
	settingsFieldOutputDir
	settingsFieldModel
	settingsFieldTimeout
	settingsFieldCount
)

type settingsSavedMsg struct {
	err error
}

// SettingsModel manages the settings screen
type SettingsModel struct {
	app        *app.App
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:  a,
		mode: settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	cfg := m.app.Config

	// Formatting locale
	m.fields[settingsFieldLocale] = textinput.New()
	m.fields[settingsFieldLocale].Placeholder = "en-IN"
	m.fields[settingsFieldLocale].CharLimit = 20
	m.fields[settingsFieldLocale].Width = 20
	m.fields[settingsFieldLocale].SetValue(cfg.Format.Locale)

	// Export directory
	m.fields[settingsFieldOutputDir] = textinput.New()
	m.fields[settingsFieldOutputDir].Placeholder = "/path/to/exports"
	m.fields[settingsFieldOutputDir].CharLimit = 256
	m.fields[settingsFieldOutputDir].Width = 60
	m.fields[settingsFieldOutputDir].SetValue(cfg.Export.OutputDir)

	// Generation model
	m.fields[settingsFieldModel] = textinput.New()
	m.fields[settingsFieldModel].Placeholder = "gemini-2.5-flash"
	m.fields[settingsFieldModel].CharLimit = 60
	m.fields[settingsFieldModel].Width = 40
	m.fields[settingsFieldModel].SetValue(cfg.AI.Model)

	// Generation timeout
	m.fields[settingsFieldTimeout] = textinput.New()
	m.fields[settingsFieldTimeout].Placeholder = "20"
	m.fields[settingsFieldTimeout].CharLimit = 5
	m.fields[settingsFieldTimeout].Width = 10
	m.fields[settingsFieldTimeout].SetValue(strconv.Itoa(cfg.AI.TimeoutSeconds))

	m.fieldFocus = settingsFieldLocale
	m.fields[settingsFieldLocale].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	return func() tea.Msg {
		locale := m.fields[settingsFieldLocale].Value()
		outputDir := m.fields[settingsFieldOutputDir].Value()
		model := m.fields[settingsFieldModel].Value()
		timeoutStr := m.fields[settingsFieldTimeout].Value()

		if _, err := language.Parse(locale); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("locale must be a BCP 47 tag (e.g. en-IN)")}
		}
		if outputDir == "" {
			return settingsSavedMsg{err: fmt.Errorf("export directory is required")}
		}

		timeout, err := strconv.Atoi(timeoutStr)
		if err != nil || timeout <= 0 {
			return settingsSavedMsg{err: fmt.Errorf("timeout must be a positive number of seconds")}
		}

		m.app.Config.Format.Locale = locale
		m.app.Config.Export.OutputDir = outputDir
		m.app.Config.AI.Model = model
		m.app.Config.AI.TimeoutSeconds = timeout

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}

		return settingsSavedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		switch {
		case msg.String() == "enter":
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = settingsModeView
		m.statusMsg = "Settings saved"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	cfg := m.app.Config

	labelStyle := lipgloss.NewStyle().Bold(true).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += subtitleStyle.Render("  Formatting") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Locale:"), valueStyle.Render(cfg.Format.Locale))
	s += "\n" + subtitleStyle.Render("  Export") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Output Directory:"), valueStyle.Render(cfg.Export.OutputDir))
	s += "\n" + subtitleStyle.Render("  AI Suggestions") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Model:"), valueStyle.Render(cfg.AI.Model))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Timeout (seconds):"), valueStyle.Render(strconv.Itoa(cfg.AI.TimeoutSeconds)))

	s += "\n" + helpStyle.Render("  enter: edit settings")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Settings") + "\n\n"

	labels := []string{"Locale:", "Export Directory:", "AI Model:", "AI Timeout (s):"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
