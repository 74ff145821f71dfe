package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Menu shortcuts
	NewList     key.Binding
	NewTask     key.Binding
	SearchLists key.Binding
	SearchTasks key.Binding
	QuitChoice  key.Binding

	// Search results
	NewSearch key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NewList: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "new list"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "new task"),
		),
		SearchLists: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "show lists"),
		),
		SearchTasks: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "show tasks"),
		),
		QuitChoice: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "quit"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "new search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.NewList, k.NewTask, k.SearchLists, k.SearchTasks, k.QuitChoice},
		{k.NewSearch, k.Help},
	}
}
