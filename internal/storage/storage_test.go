package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*KVRepo, *ArchiveRepo) {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db), NewArchiveRepo(db)
}

func TestKVPutGetDelete(t *testing.T) {
	kv, _ := openTestDB(t)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "todos")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Put(ctx, "todos", []byte(`[1]`)))
	require.NoError(t, kv.Put(ctx, "todos", []byte(`[2]`)))

	v, ok, err := kv.Get(ctx, "todos")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[2]`, string(v))

	e, err := kv.Entry(ctx, "todos")
	require.NoError(t, err)
	require.NotNil(t, e)
	require.False(t, e.UpdatedAt.IsZero())

	require.NoError(t, kv.Delete(ctx, "todos"))
	require.NoError(t, kv.Delete(ctx, "todos"))
	_, ok, err = kv.Get(ctx, "todos")
	require.NoError(t, err)
	require.False(t, ok)

	e, err = kv.Entry(ctx, "todos")
	require.NoError(t, err)
	require.Nil(t, e)
}

func TestResolveDBPathOverride(t *testing.T) {
	p, err := ResolveDBPath("  /tmp/x.db ")
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.db", p)
}

func TestArchiveRunsArePruned(t *testing.T) {
	_, runs := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < MaxArchiveRunsPerKey+5; i++ {
		_, err := runs.Insert(ctx, "todos", base.Add(time.Duration(i)*time.Hour), i, "")
		require.NoError(t, err)
	}
	_, err := runs.Insert(ctx, "workouts", base, 3, "/tmp/workout-log.pdf")
	require.NoError(t, err)

	list, err := runs.ListByKey(ctx, "todos")
	require.NoError(t, err)
	require.Len(t, list, MaxArchiveRunsPerKey)
	require.Equal(t, MaxArchiveRunsPerKey+4, list[0].RecordCount)
	require.Nil(t, list[0].ExportPath)

	list, err = runs.ListByKey(ctx, "workouts")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ExportPath)
	require.Equal(t, "/tmp/workout-log.pdf", *list[0].ExportPath)
}
