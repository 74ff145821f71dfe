package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhle/todo-app/internal/model"
)

// InsertList inserts a new list unless one with the same name exists. A
// duplicate name is not an error: the result reports SkippedDuplicate and
// carries the existing list's ID.
func (s *SQLiteStore) InsertList(ctx context.Context, list model.List) (InsertResult, error) {
	if err := list.Validate(); err != nil {
		return InsertResult{}, err
	}

	var existingID int64
	err := s.db.GetContext(ctx, &existingID,
		"SELECT id FROM list WHERE list_name = ? LIMIT 1", list.Name)
	switch {
	case err == nil:
		s.logger.Info("list already exists, skipping insertion",
			"list_name", list.Name, "id", existingID)
		return InsertResult{Outcome: SkippedDuplicate, ID: existingID}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return InsertResult{}, dalError("looking up list "+list.Name, err)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO list (list_name, summary, category) VALUES (?, ?, ?)",
		list.Name, list.Summary, list.Category,
	)
	if err != nil {
		return InsertResult{}, dalError("inserting list "+list.Name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return InsertResult{}, dalError("reading new list id", err)
	}

	s.logger.Debug("list inserted", "list_name", list.Name, "id", id)
	return InsertResult{Outcome: Inserted, ID: id}, nil
}

// FetchLists retrieves lists whose name matches the filter.
func (s *SQLiteStore) FetchLists(ctx context.Context, filter ListFilter) ([]model.List, error) {
	query := "SELECT id, list_name, summary, category FROM list"
	var args []interface{}

	switch filter.Mode {
	case MatchExact:
		query += " WHERE list_name = ?"
		args = append(args, filter.Term)
	default:
		query += " WHERE list_name LIKE ?"
		args = append(args, likePattern(filter.Term))
	}
	query += " ORDER BY id"

	var lists []model.List
	if err := s.db.SelectContext(ctx, &lists, query, args...); err != nil {
		return nil, dalError("querying lists", err)
	}
	return lists, nil
}
