package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	// Navigation
	Workspace key.Binding
	Design    key.Binding
	Preview   key.Binding
	Settings  key.Binding

	// Actions
	Select   key.Binding
	New      key.Binding
	Delete   key.Binding
	Generate key.Binding

	// Movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Workspace: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "workspace")),
	Design:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "design")),
	Preview:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
	Settings:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new item")),
	Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete item")),
	Generate:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
}
