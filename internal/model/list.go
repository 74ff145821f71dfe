package model

import (
	"fmt"
	"strings"
)

// List groups tasks. Name is unique across lists; ID is assigned by the store.
type List struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"list_name" db:"list_name"`
	Summary  *string `json:"summary,omitempty" db:"summary"`
	Category *string `json:"category,omitempty" db:"category"`
}

// Validate checks the fields required before a list can be stored.
func (l List) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("list name must not be empty")
	}
	return nil
}
