package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
)

// listInsertedMsg is sent after a list insert attempt.
type listInsertedMsg struct {
	name   string
	result store.InsertResult
	err    error
}

// taskInsertedMsg is sent after a task insert attempt.
type taskInsertedMsg struct {
	task model.Task
	id   int64
	err  error
}

// formListsLoadedMsg carries the lists offered by the task form.
type formListsLoadedMsg struct {
	lists []model.List
	err   error
}

// listResultsMsg carries the lists matching a search.
type listResultsMsg struct {
	lists []model.List
	err   error
}

// taskResultsMsg carries the tasks matching a search.
type taskResultsMsg struct {
	tasks []model.Task
	err   error
}

// insertList returns a command that persists a new list.
func (m Model) insertList(l model.List) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		res, err := s.InsertList(context.Background(), l)
		return listInsertedMsg{name: l.Name, result: res, err: err}
	}
}

// insertTask returns a command that persists a new task.
func (m Model) insertTask(t model.Task) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		id, err := s.InsertTask(context.Background(), t)
		return taskInsertedMsg{task: t, id: id, err: err}
	}
}

// loadFormLists returns a command that loads every list for the task form.
func (m Model) loadFormLists() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		lists, err := s.FetchLists(context.Background(), store.ListFilter{})
		return formListsLoadedMsg{lists: lists, err: err}
	}
}

// searchLists returns a command that fetches lists whose name contains term.
func (m Model) searchLists(term string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		lists, err := s.FetchLists(context.Background(), store.ListFilter{Term: term})
		return listResultsMsg{lists: lists, err: err}
	}
}

// searchTasks returns a command that fetches tasks whose name contains term.
func (m Model) searchTasks(term string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		tasks, err := s.FetchTasks(context.Background(), store.TaskFilter{Term: term})
		return taskResultsMsg{tasks: tasks, err: err}
	}
}
