package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo-app/internal/keys"
	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/theme"
)

// Kind selects what is being searched.
type Kind int

const (
	KindLists Kind = iota
	KindTasks
)

func (k Kind) String() string {
	if k == KindTasks {
		return "task"
	}
	return "list"
}

// QueryMsg is dispatched when the user submits a search term.
type QueryMsg struct {
	Kind Kind
	Term string
}

// CloseMsg signals the parent to return to the menu.
type CloseMsg struct{}

type mode int

const (
	modePrompt mode = iota
	modeResults
)

// Model prompts for a search word and shows the matching rows.
type Model struct {
	kind   Kind
	mode   mode
	keys   *keys.KeyMap
	input  textinput.Model
	table  table.Model
	term   string
	count  int
	width  int
	height int
}

// New creates a search model.
func New(k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = width - 4

	t := table.New(table.WithFocused(true), table.WithHeight(tableHeight(height)))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.ColorWhite).
		Background(theme.ColorBlue)
	t.SetStyles(styles)

	return Model{keys: k, input: ti, table: t, width: width, height: height}
}

// Start begins a new search of the given kind.
func (m *Model) Start(kind Kind) tea.Cmd {
	m.kind = kind
	m.mode = modePrompt
	m.input.Reset()
	m.input.Placeholder = fmt.Sprintf("search word for %s (empty shows all)", kind)
	return m.input.Focus()
}

// Kind returns what is being searched.
func (m Model) Kind() Kind {
	return m.kind
}

// ShowingResults reports whether the results table is displayed.
func (m Model) ShowingResults() bool {
	return m.mode == modeResults
}

// SetLists shows list results.
func (m *Model) SetLists(lists []model.List) {
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns(listColumns))
	rows := make([]table.Row, 0, len(lists))
	for _, l := range lists {
		rows = append(rows, table.Row{
			fmt.Sprint(l.ID),
			l.Name,
			valueOr(l.Summary, "No summary"),
			valueOr(l.Category, "No category"),
		})
	}
	m.showRows(rows)
}

// SetTasks shows task results.
func (m *Model) SetTasks(tasks []model.Task) {
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns(taskColumns))
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		priority, status := "-", "-"
		if t.Priority != nil {
			priority = t.Priority.String()
		}
		if t.Status != nil {
			status = t.Status.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprint(t.ID),
			t.Name,
			t.ListName,
			priority,
			status,
			strings.Join(t.Tags, ", "),
			valueOr(t.Deadline, "-"),
			valueOr(t.CompletedOn, "-"),
			valueOr(t.Description, ""),
		})
	}
	m.showRows(rows)
}

func (m *Model) showRows(rows []table.Row) {
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.count = len(rows)
	m.mode = modeResults
	m.input.Blur()
}

// colSpec describes a result column. Columns with a fixed width keep it;
// the others share the remaining width in proportion to flex.
type colSpec struct {
	title string
	fixed int
	flex  int
}

var (
	listColumns = []colSpec{
		{title: "ID", fixed: 5},
		{title: "Name", flex: 3},
		{title: "Summary", flex: 4},
		{title: "Category", flex: 2},
	}
	taskColumns = []colSpec{
		{title: "ID", fixed: 5},
		{title: "Task", flex: 4},
		{title: "List", flex: 3},
		{title: "Priority", fixed: 8},
		{title: "Status", fixed: 11},
		{title: "Tags", flex: 3},
		{title: "Deadline", fixed: 10},
		{title: "Completed", fixed: 10},
		{title: "Description", flex: 4},
	}
)

func (m Model) columns(specs []colSpec) []table.Column {
	avail := m.width - 6
	totalFlex := 0
	for _, c := range specs {
		avail -= c.fixed + 2
		totalFlex += c.flex
	}
	if floor := totalFlex * 4; avail < floor {
		avail = floor
	}

	cols := make([]table.Column, len(specs))
	for i, c := range specs {
		width := c.fixed
		if width == 0 {
			width = avail * c.flex / totalFlex
		}
		cols[i] = table.Column{Title: c.title, Width: width}
	}
	return cols
}

// Update handles messages for the search view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.mode == modePrompt {
		if isKey {
			switch {
			case key.Matches(keyMsg, m.keys.Back):
				return m, func() tea.Msg { return CloseMsg{} }
			case keyMsg.Type == tea.KeyEnter:
				m.term = strings.TrimSpace(m.input.Value())
				q := QueryMsg{Kind: m.kind, Term: m.term}
				return m, func() tea.Msg { return q }
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Quit):
			return m, func() tea.Msg { return CloseMsg{} }
		case key.Matches(keyMsg, m.keys.NewSearch):
			return m, m.Start(m.kind)
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the prompt or the results.
func (m Model) View() string {
	if m.mode == modePrompt {
		title := theme.TitleStyle.Render(fmt.Sprintf("Search %ss", m.kind))
		return lipgloss.NewStyle().Padding(1, 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, m.input.View()),
		)
	}

	summary := fmt.Sprintf("%d %s(s) matching %q", m.count, m.kind, m.term)
	if m.count == 0 {
		summary = fmt.Sprintf("No %ss matching %q", m.kind, m.term)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render(summary),
			m.table.View(),
		),
	)
}

// SetSize updates the search view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
	m.table.SetHeight(tableHeight(height))
}

func tableHeight(height int) int {
	h := height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func valueOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
