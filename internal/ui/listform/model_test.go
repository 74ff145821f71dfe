package listform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_TrimsAndDropsBlanks(t *testing.T) {
	m := New(80, 24)
	*m.fb = formBindings{name: "  Groceries ", summary: " weekly ", category: "  "}

	list := m.List()
	assert.Equal(t, "Groceries", list.Name)
	require.NotNil(t, list.Summary)
	assert.Equal(t, "weekly", *list.Summary)
	assert.Nil(t, list.Category)
}

func TestStartResetsFields(t *testing.T) {
	m := New(80, 24)
	*m.fb = formBindings{name: "old"}

	m.Start()
	assert.Empty(t, m.List().Name)
	assert.Contains(t, m.View(), "New List")
}

func TestUpdateWithoutFormIsNoop(t *testing.T) {
	m := New(80, 24)

	_, cmd := m.Update(nil)
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())
}
