package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
	assert.Equal(t, 80, NewLayout(80, 24).ContentWidth())
}

func TestRenderHeaderFillsWidth(t *testing.T) {
	l := NewLayout(60, 10)

	header := l.RenderHeader("TODO app", "menu")
	assert.Contains(t, header, "TODO app")
	assert.Contains(t, header, "menu")
	assert.Equal(t, 60, lipgloss.Width(header))
}

func TestRenderWithFrameKeepsStatusBarAtBottom(t *testing.T) {
	l := NewLayout(40, 10)

	frame := l.RenderWithFrame("HEADER", "one line", "STATUS")
	lines := strings.Split(frame, "\n")

	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "HEADER")
	assert.Contains(t, lines[len(lines)-1], "STATUS")
}
