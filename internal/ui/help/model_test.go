package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/todo-app/internal/keys"
)

func TestViewListsEverySection(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 120, 40)
	view := m.View()

	assert.Contains(t, view, "Keyboard Shortcuts")
	for _, s := range m.sections {
		assert.Contains(t, view, s.title)
	}
	assert.Contains(t, view, "new list")
	assert.Contains(t, view, "new search")
	assert.Contains(t, view, "next field")
}

func TestSetSize(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 24)
	m.SetSize(100, 30)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 96, m.help.Width)
}
