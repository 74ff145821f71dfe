package store

import (
	"context"

	"github.com/nhle/todo-app/internal/model"
)

// MatchMode selects how a filter's Term is compared against a name column.
type MatchMode int

const (
	// MatchSubstring matches names containing Term (LIKE '%term%').
	MatchSubstring MatchMode = iota
	// MatchExact matches names equal to Term.
	MatchExact
)

// ListFilter controls which lists FetchLists returns.
type ListFilter struct {
	Mode MatchMode
	Term string
}

// TaskFilter controls which tasks FetchTasks returns.
type TaskFilter struct {
	Mode   MatchMode
	Term   string
	ListID *int64 // restrict to one list, or nil (all)
}

// Outcome reports what InsertList did.
type Outcome int

const (
	// Inserted means a new row was written.
	Inserted Outcome = iota
	// SkippedDuplicate means a list with the same name already existed and
	// nothing was written.
	SkippedDuplicate
)

func (o Outcome) String() string {
	if o == SkippedDuplicate {
		return "skipped duplicate"
	}
	return "inserted"
}

// InsertResult is returned by InsertList. ID is the new row's id, or the
// existing row's id when the insert was skipped.
type InsertResult struct {
	Outcome Outcome
	ID      int64
}

// Store defines the persistence interface for lists and tasks.
type Store interface {
	EnsureListTable(ctx context.Context) error
	EnsureTaskTable(ctx context.Context) error

	InsertList(ctx context.Context, list model.List) (InsertResult, error)
	FetchLists(ctx context.Context, filter ListFilter) ([]model.List, error)

	InsertTask(ctx context.Context, task model.Task) (int64, error)
	FetchTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)

	Close() error
}

// likePattern wraps term for a substring LIKE match.
func likePattern(term string) string {
	return "%" + term + "%"
}
