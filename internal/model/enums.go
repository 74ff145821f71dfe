package model

import "strings"

// Priority is the urgency of a task. Its ordinal is what gets persisted.
type Priority int

// Priority values. The numeric value is the stored ordinal.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Priorities lists every priority in ordinal order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Ordinal returns the integer stored for p.
func (p Priority) Ordinal() int { return int(p) }

// String returns the display name of p.
func (p Priority) String() string {
	switch p {
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Low"
	}
}

// PriorityFromOrdinal decodes a stored ordinal. Unknown values decode to
// PriorityLow rather than failing.
func PriorityFromOrdinal(n int) Priority {
	switch n {
	case 1:
		return PriorityMedium
	case 2:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// ParsePriority parses user-entered text such as "High" or "medium".
func ParsePriority(s string) (Priority, error) {
	switch normalizeEnumText(s) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return PriorityLow, &ParseError{Kind: "priority", Input: s}
}

// Status is the progress state of a task. Its ordinal is what gets persisted.
type Status int

// Status values. The numeric value is the stored ordinal.
const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

// Statuses lists every status in ordinal order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Ordinal returns the integer stored for s.
func (s Status) Ordinal() int { return int(s) }

// String returns the display name of s.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Not Started"
	}
}

// StatusFromOrdinal decodes a stored ordinal. Unknown values decode to
// StatusNotStarted rather than failing.
func StatusFromOrdinal(n int) Status {
	switch n {
	case 1:
		return StatusInProgress
	case 2:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// ParseStatus parses user-entered text. "NotStarted", "not started" and
// "not_started" are all accepted.
func ParseStatus(s string) (Status, error) {
	switch normalizeEnumText(s) {
	case "notstarted":
		return StatusNotStarted, nil
	case "inprogress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	}
	return StatusNotStarted, &ParseError{Kind: "status", Input: s}
}

// normalizeEnumText lowercases s and strips spaces, underscores and dashes.
func normalizeEnumText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
