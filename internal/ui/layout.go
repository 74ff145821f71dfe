package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo-app/internal/theme"
)

// Layout sizes the frame around the active view: a one-line header, the
// content area and a one-line status bar.
type Layout struct {
	Width  int
	Height int
}

const chromeHeight = 2

// NewLayout creates a Layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentWidth returns the width available to the active view.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height left between the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-chromeHeight, 0)
}

// RenderHeader renders the title on the left and context on the right.
func (l Layout) RenderHeader(title, right string) string {
	return l.bar(theme.HeaderStyle, title, right)
}

// RenderStatusBar renders the status line across the full width.
func (l Layout) RenderStatusBar(text string) string {
	return l.bar(theme.StatusBarStyle, text, "")
}

// bar lays out left and right text on one line, filling the gap with the
// style's background.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	leftR := style.Render(left)
	rightR := ""
	if right != "" {
		rightR = style.Render(right)
	}

	gap := max(l.Width-lipgloss.Width(leftR)-lipgloss.Width(rightR), 0)
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, leftR, filler, rightR)
}

// RenderWithFrame stacks header, content and status bar. The content is
// padded to ContentHeight so the status bar stays on the last line.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	body := lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}
