package taskform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-app/internal/model"
)

func newFilled(fb formBindings) Model {
	m := New(80, 24)
	m.SetLists([]model.List{{ID: 1, Name: "Home"}, {ID: 7, Name: "Work"}})
	*m.fb = fb
	return m
}

func TestTask_FromFields(t *testing.T) {
	m := newFilled(formBindings{
		name:        "  Ship release ",
		listID:      7,
		priority:    model.PriorityHigh.String(),
		status:      model.StatusInProgress.String(),
		tags:        "release, q3",
		deadline:    "2024-09-30",
		description: "",
	})

	task, err := m.Task()
	require.NoError(t, err)
	assert.Equal(t, "Ship release", task.Name)
	assert.Equal(t, int64(7), task.ListID)
	assert.Equal(t, "Work", task.ListName)
	require.NotNil(t, task.Priority)
	assert.Equal(t, model.PriorityHigh, *task.Priority)
	require.NotNil(t, task.Status)
	assert.Equal(t, model.StatusInProgress, *task.Status)
	assert.Equal(t, []string{"release", "q3"}, task.Tags)
	require.NotNil(t, task.Deadline)
	assert.Equal(t, "2024-09-30", *task.Deadline)
	assert.Nil(t, task.Description)
}

func TestTask_NoneLeavesEnumsNil(t *testing.T) {
	m := newFilled(formBindings{name: "x", listID: 1})

	task, err := m.Task()
	require.NoError(t, err)
	assert.Nil(t, task.Priority)
	assert.Nil(t, task.Status)
	assert.Nil(t, task.Tags)
	assert.Equal(t, "Home", task.ListName)
}

func TestTask_BadPriorityText(t *testing.T) {
	m := newFilled(formBindings{name: "x", listID: 1, priority: "Urgent"})

	_, err := m.Task()
	var perr *model.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestStartSelectsFirstList(t *testing.T) {
	m := New(80, 24)
	assert.False(t, m.HasLists())

	m.SetLists([]model.List{{ID: 3, Name: "Inbox"}})
	assert.True(t, m.HasLists())
	m.Start()
	assert.Equal(t, int64(3), m.fb.listID)
	assert.NotEmpty(t, m.View())
}
