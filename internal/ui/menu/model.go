package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo-app/internal/keys"
	"github.com/nhle/todo-app/internal/theme"
)

// Choice is a main menu entry.
type Choice int

const (
	ChoiceNewList Choice = iota
	ChoiceNewTask
	ChoiceSearchLists
	ChoiceSearchTasks
	ChoiceQuit
)

var labels = []string{
	"Create a new LIST",
	"Create a new TASK",
	"Show current LISTS",
	"Show current TASKS",
	"QUIT",
}

func (c Choice) String() string {
	if c < 0 || int(c) >= len(labels) {
		return "unknown"
	}
	return labels[c]
}

// ChosenMsg is dispatched when the user picks a menu entry.
type ChosenMsg struct {
	Choice Choice
}

// banner is the block-letter title shown above the menu.
const banner = ` _____ ___  ____   ___
|_   _/ _ \|  _ \ / _ \    __ _ _ __  _ __
  | || | | | | | | | | |  / _` + "`" + ` | '_ \| '_ \
  | || |_| | |_| | |_| | | (_| | |_) | |_) |
  |_| \___/|____/ \___/   \__,_| .__/| .__/
                               |_|   |_|`

// Model is the main menu.
type Model struct {
	keys        *keys.KeyMap
	selectedIdx int
	width       int
	height      int
}

// New creates a menu model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Selected returns the highlighted entry.
func (m Model) Selected() Choice {
	return Choice(m.selectedIdx)
}

// Update handles key presses. Digits pick an entry directly.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.selectedIdx = (m.selectedIdx + 1) % len(labels)
	case key.Matches(keyMsg, m.keys.Up):
		m.selectedIdx--
		if m.selectedIdx < 0 {
			m.selectedIdx = len(labels) - 1
		}
	case key.Matches(keyMsg, m.keys.Select):
		return m, choose(m.Selected())
	case key.Matches(keyMsg, m.keys.NewList):
		return m.pick(ChoiceNewList)
	case key.Matches(keyMsg, m.keys.NewTask):
		return m.pick(ChoiceNewTask)
	case key.Matches(keyMsg, m.keys.SearchLists):
		return m.pick(ChoiceSearchLists)
	case key.Matches(keyMsg, m.keys.SearchTasks):
		return m.pick(ChoiceSearchTasks)
	case key.Matches(keyMsg, m.keys.QuitChoice):
		return m.pick(ChoiceQuit)
	}
	return m, nil
}

func (m Model) pick(c Choice) (Model, tea.Cmd) {
	m.selectedIdx = int(c)
	return m, choose(c)
}

func choose(c Choice) tea.Cmd {
	return func() tea.Msg { return ChosenMsg{Choice: c} }
}

// View renders the banner and the numbered entries.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.BannerStyle.Render(banner))
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("Press a corresponding number:"))
	b.WriteString("\n\n")

	for i, label := range labels {
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetSize updates the menu dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
