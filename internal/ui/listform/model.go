package listform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/theme"
	"github.com/nhle/todo-app/internal/ui/formutil"
)

// SubmittedMsg is dispatched when the user completes the form.
type SubmittedMsg struct {
	List model.List
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	summary  string
	category string
}

// Model is the Bubble Tea model for the new-list form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a list form model.
func New(width, height int) Model {
	return Model{fb: &formBindings{}, width: width, height: height}
}

// Start resets the fields and builds a fresh form.
func (m *Model) Start() tea.Cmd {
	*m.fb = formBindings{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("List name").
				Placeholder("Groceries").
				Value(&m.fb.name).
				Validate(formutil.Required("List name")),
			huh.NewInput().
				Title("Summary").
				Placeholder("Optional").
				Value(&m.fb.summary),
			huh.NewInput().
				Title("Category").
				Placeholder("Optional").
				Value(&m.fb.category),
		),
	).WithWidth(formutil.Width(m.width)).WithHeight(formutil.Height(m.height))
	return m.form.Init()
}

// Update handles messages for the list form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		list := m.List()
		m.form = nil
		return m, func() tea.Msg { return SubmittedMsg{List: list} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

// List builds a List from the current field values. Blank optional fields
// become nil.
func (m Model) List() model.List {
	return model.List{
		Name:     strings.TrimSpace(m.fb.name),
		Summary:  formutil.Optional(m.fb.summary),
		Category: formutil.Optional(m.fb.category),
	}
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	content := theme.TitleStyle.Render("New List") + "\n" + m.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
