package store

import "context"

// listSchema creates the list table. list_name is the natural key; the
// unique index backs up the lookup InsertList does before writing.
var listSchema = []string{
	`CREATE TABLE IF NOT EXISTS list (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	list_name TEXT NOT NULL,
	summary   TEXT,
	category  TEXT
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_list_list_name ON list(list_name)`,
}

// taskSchema creates the task table. list_name is copied from the parent
// list at insert time and is not kept in sync afterwards.
var taskSchema = []string{
	`CREATE TABLE IF NOT EXISTS task (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	task_name    TEXT NOT NULL,
	list_id      INTEGER NOT NULL,
	list_name    TEXT NOT NULL,
	priority     INTEGER,
	status       INTEGER,
	tags         TEXT,
	deadline     TEXT,
	completed_on TEXT,
	description  TEXT,
	FOREIGN KEY(list_id) REFERENCES list(id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_task_list_id ON task(list_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_task_name ON task(task_name)`,
}

// EnsureListTable creates the list table if it does not exist.
func (s *SQLiteStore) EnsureListTable(ctx context.Context) error {
	return s.execSchema(ctx, "creating list table", listSchema)
}

// EnsureTaskTable creates the task table if it does not exist. The list
// table must already exist.
func (s *SQLiteStore) EnsureTaskTable(ctx context.Context) error {
	return s.execSchema(ctx, "creating task table", taskSchema)
}

func (s *SQLiteStore) execSchema(ctx context.Context, op string, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return dalError(op, err)
		}
	}
	return nil
}
