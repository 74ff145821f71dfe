package taskform

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
	Task model.Task
}

// InvalidMsg is dispatched when the completed form does not produce a valid
// task. The user can reopen the form and try again.
type InvalidMsg struct {
	Err error
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	listID      int64
	priority    string
	status      string
	tags        string
	deadline    string
	description string
}

// Model is the Bubble Tea model for the new-task form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	lists  []model.List
	width  int
	height int
}

// New creates a task form model.
func New(width, height int) Model {
	return Model{fb: &formBindings{}, width: width, height: height}
}

// SetLists sets the lists offered by the list selector.
func (m *Model) SetLists(lists []model.List) {
	m.lists = lists
}

// HasLists reports whether there is at least one list to put a task in.
func (m Model) HasLists() bool {
	return len(m.lists) > 0
}

// Start resets the fields and builds a fresh form.
func (m *Model) Start() tea.Cmd {
	*m.fb = formBindings{}
	if len(m.lists) > 0 {
		m.fb.listID = m.lists[0].ID
	}
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	listOpts := make([]huh.Option[int64], len(m.lists))
	for i, l := range m.lists {
		listOpts[i] = huh.NewOption(l.Name, l.ID)
	}

	priorityOpts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range model.Priorities {
		priorityOpts = append(priorityOpts, huh.NewOption(p.String(), p.String()))
	}
	statusOpts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, s := range model.Statuses {
		statusOpts = append(statusOpts, huh.NewOption(s.String(), s.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Placeholder("What needs to be done?").
				Value(&m.fb.name).
				Validate(formutil.Required("Task name")),
			huh.NewSelect[int64]().
				Title("List").
				Options(listOpts...).
				Value(&m.fb.listID),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOpts...).
				Value(&m.fb.priority),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Value(&m.fb.status),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tags").
				Placeholder("comma separated (optional)").
				Value(&m.fb.tags).
				Validate(formutil.ValidateTags),
			huh.NewInput().
				Title("Deadline").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.fb.deadline).
				Validate(model.ValidateDate),
			huh.NewText().
				Title("Description").
				Placeholder("Optional details...").
				Value(&m.fb.description),
		),
	).WithWidth(formutil.Width(m.width)).WithHeight(formutil.Height(m.height))
}

// Update handles messages for the task form.
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
		m.form = nil
		task, err := m.Task()
		if err != nil {
			return m, func() tea.Msg { return InvalidMsg{Err: err} }
		}
		return m, func() tea.Msg { return SubmittedMsg{Task: task} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

// Task builds a Task from the current field values. Priority and status
// text is parsed strictly.
func (m Model) Task() (model.Task, error) {
	task := model.Task{
		Name:        strings.TrimSpace(m.fb.name),
		ListID:      m.fb.listID,
		Tags:        model.ParseTagInput(m.fb.tags),
		Deadline:    formutil.Optional(m.fb.deadline),
		Description: formutil.Optional(m.fb.description),
	}
	for _, l := range m.lists {
		if l.ID == task.ListID {
			task.ListName = l.Name
			break
		}
	}

	if m.fb.priority != "" {
		p, err := model.ParsePriority(m.fb.priority)
		if err != nil {
			return task, err
		}
		task.Priority = &p
	}
	if m.fb.status != "" {
		s, err := model.ParseStatus(m.fb.status)
		if err != nil {
			return task, err
		}
		task.Status = &s
	}

	return task, task.Validate()
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	content := theme.TitleStyle.Render("New Task") + "\n" + m.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
