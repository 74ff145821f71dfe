package model

import (
	"errors"
	"fmt"
)

// ErrTagSeparator is returned when a tag contains TagSeparator, which would
// split into two tags when read back.
var ErrTagSeparator = errors.New(`tag must not contain ","`)

// ErrEmptyTag is returned for a blank tag. A single empty tag would be
// stored as "" and read back as no tags.
var ErrEmptyTag = errors.New("tag must not be empty")

// ParseError reports free text that does not name a known enum value.
type ParseError struct {
	Kind  string // "priority" or "status"
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}
