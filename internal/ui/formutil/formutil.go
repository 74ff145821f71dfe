// Package formutil holds validators and sizing shared by the huh forms.
package formutil

import (
	"fmt"
	"strings"

	"github.com/nhle/todo-app/internal/model"
)

// Width clamps the terminal width to a comfortable form width.
func Width(termWidth int) int {
	w := termWidth - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

// Height clamps the terminal height for a form.
func Height(termHeight int) int {
	h := termHeight - 4
	if h < 10 {
		h = 10
	}
	return h
}

// Required returns a validator rejecting blank input.
func Required(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// Optional trims s and returns nil when it is blank.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ValidateTags rejects input that would produce an empty tag between commas.
func ValidateTags(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, part := range strings.Split(s, model.TagSeparator) {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("empty tag, separate tags with single commas")
		}
	}
	return nil
}
