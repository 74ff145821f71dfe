package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/todo-app/internal/keys"
	"github.com/nhle/todo-app/internal/store"
	"github.com/nhle/todo-app/internal/theme"
	"github.com/nhle/todo-app/internal/ui"
	helpview "github.com/nhle/todo-app/internal/ui/help"
	"github.com/nhle/todo-app/internal/ui/listform"
	"github.com/nhle/todo-app/internal/ui/menu"
	"github.com/nhle/todo-app/internal/ui/search"
	"github.com/nhle/todo-app/internal/ui/taskform"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewListForm
	ViewTaskForm
	ViewSearch
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	logger       *log.Logger
	keys         *keys.KeyMap
	menu         menu.Model
	listForm     listform.Model
	taskForm     taskform.Model
	search       search.Model
	helpView     helpview.Model
	ready        bool

	// status is the outcome of the last operation, shown in the status bar
	// until the next menu choice.
	status    string
	statusErr bool
}

// New creates a new root application model with the given store.
func New(s store.Store, logger *log.Logger) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView: ViewMenu,
		store:       s,
		logger:      logger,
		keys:        k,
		menu:        menu.New(k, 80, 24),
		listForm:    listform.New(80, 24),
		taskForm:    taskform.New(80, 24),
		search:      search.New(k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
	}
}

// Run starts the terminal UI and blocks until the user quits.
func Run(s store.Store, logger *log.Logger) error {
	logger.Info("starting interactive session")
	p := tea.NewProgram(New(s, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	logger.Info("interactive session ended")
	return nil
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.menu.SetSize(w, h)
		m.listForm.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.search.SetSize(w, h)
		m.helpView.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case menu.ChosenMsg:
		return m.choose(msg.Choice)

	case listform.SubmittedMsg:
		m.currentView = ViewMenu
		return m, m.insertList(msg.List)

	case listform.CancelMsg:
		m.currentView = ViewMenu
		m.setNotice("List creation cancelled.")
		return m, nil

	case listInsertedMsg:
		switch {
		case msg.err != nil:
			m.setError("creating list", msg.err)
		case msg.result.Outcome == store.SkippedDuplicate:
			m.setNotice(fmt.Sprintf("List %q already exists; skipping.", msg.name))
		default:
			m.setNotice(fmt.Sprintf("Created list %q.", msg.name))
		}
		return m, nil

	case formListsLoadedMsg:
		if msg.err != nil {
			m.setError("loading lists", msg.err)
			return m, nil
		}
		m.taskForm.SetLists(msg.lists)
		if !m.taskForm.HasLists() {
			m.setNotice("Create a list before adding tasks.")
			return m, nil
		}
		m.currentView = ViewTaskForm
		return m, m.taskForm.Start()

	case taskform.SubmittedMsg:
		m.currentView = ViewMenu
		return m, m.insertTask(msg.Task)

	case taskform.InvalidMsg:
		m.currentView = ViewMenu
		m.setError("creating task", msg.Err)
		return m, nil

	case taskform.CancelMsg:
		m.currentView = ViewMenu
		m.setNotice("Task creation cancelled.")
		return m, nil

	case taskInsertedMsg:
		if msg.err != nil {
			m.setError("creating task", msg.err)
			return m, nil
		}
		m.setNotice(fmt.Sprintf("Created task %q in list %q.", msg.task.Name, msg.task.ListName))
		return m, nil

	case search.QueryMsg:
		if msg.Kind == search.KindTasks {
			return m, m.searchTasks(msg.Term)
		}
		return m, m.searchLists(msg.Term)

	case listResultsMsg:
		if msg.err != nil {
			m.currentView = ViewMenu
			m.setError("searching lists", msg.err)
			return m, nil
		}
		m.search.SetLists(msg.lists)
		return m, nil

	case taskResultsMsg:
		if msg.err != nil {
			m.currentView = ViewMenu
			m.setError("searching tasks", msg.err)
			return m, nil
		}
		m.search.SetTasks(msg.tasks)
		return m, nil

	case search.CloseMsg:
		m.currentView = ViewMenu
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.currentView {
		case ViewMenu:
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			if key.Matches(msg, m.keys.Help) {
				return m.toggleHelp(), nil
			}
		case ViewHelp:
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				return m.toggleHelp(), nil
			}
		case ViewSearch:
			if m.search.ShowingResults() && key.Matches(msg, m.keys.Help) {
				return m.toggleHelp(), nil
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// choose switches to the view behind a menu entry.
func (m Model) choose(c menu.Choice) (tea.Model, tea.Cmd) {
	m.clearStatus()
	switch c {
	case menu.ChoiceNewList:
		m.currentView = ViewListForm
		return m, m.listForm.Start()
	case menu.ChoiceNewTask:
		return m, m.loadFormLists()
	case menu.ChoiceSearchLists:
		m.currentView = ViewSearch
		return m, m.search.Start(search.KindLists)
	case menu.ChoiceSearchTasks:
		m.currentView = ViewSearch
		return m, m.search.Start(search.KindTasks)
	case menu.ChoiceQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) toggleHelp() Model {
	if m.currentView == ViewHelp {
		m.currentView = m.previousView
		return m
	}
	m.previousView = m.currentView
	m.currentView = ViewHelp
	return m
}

func (m *Model) setNotice(s string) {
	m.status = s
	m.statusErr = false
}

// setError reports a failed operation in the status bar. The session keeps
// running so the user can try again.
func (m *Model) setError(op string, err error) {
	m.logger.Error("operation failed", "op", op, "err", err)
	m.status = fmt.Sprintf("Error %s: %v", op, err)
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case ViewListForm:
		m.listForm, cmd = m.listForm.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("TODO app", m.viewName())
	statusBar := m.layout.RenderStatusBar(m.statusLine())
	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewListForm:
		return m.listForm.View()
	case ViewTaskForm:
		return m.taskForm.View()
	case ViewSearch:
		return m.search.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return m.menu.View()
	}
}

func (m Model) viewName() string {
	switch m.currentView {
	case ViewListForm:
		return "new list"
	case ViewTaskForm:
		return "new task"
	case ViewSearch:
		return m.search.Kind().String() + " search"
	case ViewHelp:
		return "help"
	default:
		return "menu"
	}
}

// statusLine returns the last outcome or keyboard hints for the status bar.
func (m Model) statusLine() string {
	if m.status != "" && m.currentView == ViewMenu {
		if m.statusErr {
			return theme.ErrorStyle.Render(m.status)
		}
		return theme.NoticeStyle.Render(m.status)
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewListForm, ViewTaskForm:
		return "enter submit | esc cancel"
	case ViewSearch:
		if m.search.ShowingResults() {
			return "j/k scroll | / new search | esc back"
		}
		return "enter search | esc back"
	default:
		return "1-5 choose | j/k move | enter select | ? help | q quit"
	}
}
