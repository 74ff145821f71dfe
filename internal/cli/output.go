package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/theme"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBorder)).
		Headers(headers...)
}

func renderLists(w io.Writer, lists []model.List) {
	if len(lists) == 0 {
		fmt.Fprintln(w, "No lists found.")
		return
	}
	t := newTable("ID", "Name", "Summary", "Category")
	for _, l := range lists {
		t.Row(
			fmt.Sprint(l.ID),
			l.Name,
			orDefault(l.Summary, "No summary"),
			orDefault(l.Category, "No category"),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}
	t := newTable("ID", "Task", "List", "Priority", "Status", "Tags", "Deadline", "Completed", "Description").
		StyleFunc(taskCellStyle(tasks))
	for _, task := range tasks {
		t.Row(
			fmt.Sprint(task.ID),
			task.Name,
			task.ListName,
			priorityText(task.Priority),
			statusText(task.Status),
			strings.Join(task.Tags, ", "),
			orDefault(task.Deadline, "-"),
			orDefault(task.CompletedOn, "-"),
			orDefault(task.Description, ""),
		)
	}
	fmt.Fprintln(w, t.Render())
}

const (
	taskColPriority = 3
	taskColStatus   = 4
)

// taskCellStyle colors the priority and status cells of a task table.
func taskCellStyle(tasks []model.Task) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow || row < 0 || row >= len(tasks) {
			return lipgloss.NewStyle()
		}
		task := tasks[row]
		switch {
		case col == taskColPriority && task.Priority != nil:
			return theme.PriorityStyle(*task.Priority)
		case col == taskColStatus && task.Status != nil:
			return theme.StatusStyle(*task.Status)
		}
		return lipgloss.NewStyle()
	}
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func priorityText(p *model.Priority) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func statusText(s *model.Status) string {
	if s == nil {
		return "-"
	}
	return s.String()
}
