package app

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
	"github.com/nhle/todo-app/internal/ui/listform"
	"github.com/nhle/todo-app/internal/ui/menu"
	"github.com/nhle/todo-app/internal/ui/search"
	"github.com/nhle/todo-app/internal/ui/taskform"
	"github.com/nhle/todo-app/tests/testutil"
)

func newTestModel(t *testing.T) (Model, *store.SQLiteStore) {
	t.Helper()
	s := testutil.NewTestStore(t)
	m := New(s, log.New(io.Discard))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), s
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_LoadingUntilSized(t *testing.T) {
	m := New(testutil.NewTestStore(t), log.New(io.Discard))
	assert.Equal(t, "Loading...", m.View())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	assert.Contains(t, view, "Create a new LIST")
	assert.Contains(t, view, "QUIT")
	assert.Contains(t, view, "q quit")
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, menu.ChosenMsg{Choice: menu.ChoiceQuit})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, keyRune('?'))
	assert.Equal(t, ViewHelp, m.currentView)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewMenu, m.currentView)
}

func TestMenuDigitOpensListForm(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, keyRune('1'))
	require.NotNil(t, cmd)
	chosen, ok := cmd().(menu.ChosenMsg)
	require.True(t, ok)

	m, _ = send(t, m, chosen)
	assert.Equal(t, ViewListForm, m.currentView)

	m, _ = send(t, m, listform.CancelMsg{})
	assert.Equal(t, ViewMenu, m.currentView)
	assert.Contains(t, m.View(), "cancelled")
}

func TestCreateList_StatusReportsOutcome(t *testing.T) {
	m, s := newTestModel(t)

	m, cmd := send(t, m, listform.SubmittedMsg{List: model.List{Name: "Groceries"}})
	require.NotNil(t, cmd)
	assert.Equal(t, ViewMenu, m.currentView)

	m, _ = send(t, m, cmd())
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, `Created list "Groceries"`)

	m, _ = send(t, m, m.insertList(model.List{Name: "Groceries"})())
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "already exists")

	lists, err := s.FetchLists(t.Context(), store.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestStoreErrorIsRecoverable(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, listInsertedMsg{name: "x", err: errors.New("disk full")})
	assert.Nil(t, cmd)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "disk full")
	assert.Equal(t, ViewMenu, m.currentView)

	// The next menu choice clears the error and proceeds normally.
	m, _ = send(t, m, menu.ChosenMsg{Choice: menu.ChoiceSearchLists})
	assert.Empty(t, m.status)
	assert.Equal(t, ViewSearch, m.currentView)
}

func TestNewTask_RequiresAList(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, menu.ChosenMsg{Choice: menu.ChoiceNewTask})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, ViewMenu, m.currentView)
	assert.Contains(t, m.status, "Create a list")
}

func TestNewTask_OpensFormAndInserts(t *testing.T) {
	m, s := newTestModel(t)
	res, err := s.InsertList(t.Context(), model.List{Name: "Home"})
	require.NoError(t, err)

	m, cmd := send(t, m, menu.ChosenMsg{Choice: menu.ChoiceNewTask})
	m, _ = send(t, m, cmd())
	require.Equal(t, ViewTaskForm, m.currentView)
	assert.True(t, m.taskForm.HasLists())

	task := model.Task{Name: "Sweep", ListID: res.ID, ListName: "Home", Tags: []string{"chores"}}
	m, cmd = send(t, m, taskform.SubmittedMsg{Task: task})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.False(t, m.statusErr, m.status)
	assert.Contains(t, m.status, `Created task "Sweep" in list "Home"`)

	tasks, err := s.FetchTasks(t.Context(), store.TaskFilter{Term: "Sweep"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"chores"}, tasks[0].Tags)
}

func TestNewTask_InvalidInputShowsError(t *testing.T) {
	m, _ := newTestModel(t)

	_, perr := model.ParsePriority("urgent")
	m, _ = send(t, m, taskform.InvalidMsg{Err: perr})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "urgent")
	assert.Equal(t, ViewMenu, m.currentView)
}

func TestSearchTasks(t *testing.T) {
	m, s := newTestModel(t)
	res, err := s.InsertList(t.Context(), model.List{Name: "Home"})
	require.NoError(t, err)
	_, err = s.InsertTask(t.Context(), model.Task{Name: "Water plants", ListID: res.ID})
	require.NoError(t, err)

	m, _ = send(t, m, menu.ChosenMsg{Choice: menu.ChoiceSearchTasks})
	require.Equal(t, ViewSearch, m.currentView)

	m, cmd := send(t, m, search.QueryMsg{Kind: search.KindTasks, Term: "plants"})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.True(t, m.search.ShowingResults())
	view := m.View()
	assert.Contains(t, view, "Water plants")
	assert.Contains(t, view, "task search")

	m, _ = send(t, m, search.CloseMsg{})
	assert.Equal(t, ViewMenu, m.currentView)
}

func TestSearchLists_Empty(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, menu.ChosenMsg{Choice: menu.ChoiceSearchLists})
	m, cmd := send(t, m, search.QueryMsg{Kind: search.KindLists, Term: "none"})
	m, _ = send(t, m, cmd())

	assert.Contains(t, m.View(), `No lists matching "none"`)
}
