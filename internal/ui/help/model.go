package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo-app/internal/keys"
	"github.com/nhle/todo-app/internal/theme"
)

// section is a titled group of bindings.
type section struct {
	title    string
	bindings [][]key.Binding
}

// formBindings describe the keys huh forms handle themselves.
var formBindings = [][]key.Binding{{
	key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "next field")),
	key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}}

// Model is the help overlay listing the shortcuts of every view.
type Model struct {
	keys     *keys.KeyMap
	sections []section
	help     help.Model
	width    int
	height   int
}

// New creates a help view from the key map.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width - 4
	return Model{
		keys:     k,
		sections: []section{
			{title: "Menu and search", bindings: k.FullHelp()},
			{title: "Forms", bindings: formBindings},
		},
		help:   h,
		width:  width,
		height: height,
	}
}

// Update handles messages for the help view. The parent handles closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders every section.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")

	for _, s := range m.sections {
		b.WriteString("\n")
		b.WriteString(theme.NoticeStyle.Render(s.title))
		b.WriteString("\n")
		b.WriteString(m.help.FullHelpView(s.bindings))
		b.WriteString("\n")
	}

	return theme.DetailPanelStyle.
		Width(max(m.width-4, 20)).
		Render(strings.TrimRight(b.String(), "\n"))
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
