package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
	"github.com/nhle/todo-app/tests/testutil"
)

func execRaw(t *testing.T, s *store.SQLiteStore, query string, args ...interface{}) {
	t.Helper()
	require.NoError(t, store.ExecRaw(s, query, args...))
}

func TestEnsureTables_Idempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	listID := insertList(t, s, "Keep")

	for i := 0; i < 3; i++ {
		require.NoError(t, s.EnsureListTable(ctx))
		require.NoError(t, s.EnsureTaskTable(ctx))
	}

	lists, err := s.FetchLists(ctx, store.ListFilter{})
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, listID, lists[0].ID)
}

func TestNewSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	res, err := s.InsertList(ctx, model.List{Name: "Persistent"})
	require.NoError(t, err)
	_, err = s.InsertTask(ctx, model.Task{Name: "survive restart", ListID: res.ID})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	again, err := s.InsertList(ctx, model.List{Name: "Persistent"})
	require.NoError(t, err)
	assert.Equal(t, store.SkippedDuplicate, again.Outcome)
	assert.Equal(t, res.ID, again.ID)

	tasks, err := s.FetchTasks(ctx, store.TaskFilter{Term: "restart"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Persistent", tasks[0].ListName)
}

func TestNewSQLiteStore_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "todo.db")

	_, err := store.NewSQLiteStore(path)
	require.Error(t, err)

	var dalErr *store.DalError
	assert.ErrorAs(t, err, &dalErr)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "inserted", store.Inserted.String())
	assert.Equal(t, "skipped duplicate", store.SkippedDuplicate.String())
}
