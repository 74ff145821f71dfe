package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of Deadline and CompletedOn.
const DateLayout = "2006-01-02"

// Task is a single item of work belonging to a List.
type Task struct {
	ID     int64  `json:"id"`
	Name   string `json:"task_name"`
	ListID int64  `json:"list_id"`

	// ListName is a copy of the parent list's name taken at insert time.
	ListName string `json:"list_name"`

	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Deadline    *string   `json:"deadline,omitempty"`
	CompletedOn *string   `json:"completed_on,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// Validate checks the fields required before a task can be stored.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if t.ListID <= 0 {
		return fmt.Errorf("task %q has no list", t.Name)
	}
	for _, tag := range t.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("task %q: %w", t.Name, ErrEmptyTag)
		}
		if strings.Contains(tag, TagSeparator) {
			return fmt.Errorf("tag %q: %w", tag, ErrTagSeparator)
		}
	}
	return nil
}

// ValidateDate accepts an empty string or a date in DateLayout.
func ValidateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return nil
}
