package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/nhle/todo-app/internal/model"
)

// taskRow mirrors the task table. Enum and tag columns are stored in their
// encoded form and converted by toModel.
type taskRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"task_name"`
	ListID      int64          `db:"list_id"`
	ListName    string         `db:"list_name"`
	Priority    sql.NullInt64  `db:"priority"`
	Status      sql.NullInt64  `db:"status"`
	Tags        sql.NullString `db:"tags"`
	Deadline    sql.NullString `db:"deadline"`
	CompletedOn sql.NullString `db:"completed_on"`
	Description sql.NullString `db:"description"`
}

func (r taskRow) toModel() model.Task {
	t := model.Task{
		ID:          r.ID,
		Name:        r.Name,
		ListID:      r.ListID,
		ListName:    r.ListName,
		Tags:        model.SplitTags(nullStringPtr(r.Tags)),
		Deadline:    nullStringPtr(r.Deadline),
		CompletedOn: nullStringPtr(r.CompletedOn),
		Description: nullStringPtr(r.Description),
	}
	if r.Priority.Valid {
		p := model.PriorityFromOrdinal(int(r.Priority.Int64))
		t.Priority = &p
	}
	if r.Status.Valid {
		st := model.StatusFromOrdinal(int(r.Status.Int64))
		t.Status = &st
	}
	return t
}

// InsertTask inserts a task and returns its new ID. When ListName is empty
// it is copied from the parent list; a missing parent fails the insert.
func (s *SQLiteStore) InsertTask(ctx context.Context, task model.Task) (int64, error) {
	if err := task.Validate(); err != nil {
		return 0, err
	}

	var priority, status *int
	if task.Priority != nil {
		p := task.Priority.Ordinal()
		priority = &p
	}
	if task.Status != nil {
		st := task.Status.Ordinal()
		status = &st
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO task (
			task_name, list_id, list_name,
			priority, status, tags,
			deadline, completed_on, description
		) VALUES (
			?, ?, COALESCE(NULLIF(?, ''), (SELECT list_name FROM list WHERE id = ?)),
			?, ?, ?,
			?, ?, ?
		)`,
		task.Name, task.ListID, task.ListName, task.ListID,
		priority, status, model.JoinTags(task.Tags),
		task.Deadline, task.CompletedOn, task.Description,
	)
	if err != nil {
		return 0, dalError("inserting task "+task.Name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, dalError("reading new task id", err)
	}

	s.logger.Debug("task inserted", "task_name", task.Name, "id", id, "list_id", task.ListID)
	return id, nil
}

// FetchTasks retrieves tasks whose name matches the filter.
func (s *SQLiteStore) FetchTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	var conditions []string
	var args []interface{}

	switch filter.Mode {
	case MatchExact:
		conditions = append(conditions, "task_name = ?")
		args = append(args, filter.Term)
	default:
		conditions = append(conditions, "task_name LIKE ?")
		args = append(args, likePattern(filter.Term))
	}
	if filter.ListID != nil {
		conditions = append(conditions, "list_id = ?")
		args = append(args, *filter.ListID)
	}

	query := `
		SELECT id, task_name, list_id, list_name, priority, status,
			tags, deadline, completed_on, description
		FROM task
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY id`

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dalError("querying tasks", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toModel())
	}
	return tasks, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
