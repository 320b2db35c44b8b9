package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dashline/internal/record"
	"dashline/internal/storage"
)

type todo struct {
	record.Meta
	Task string `json:"task"`
}

func (t *todo) Clone() *todo { c := *t; return &c }

var now = time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)

func newTodoStore(t *testing.T) (*record.Store[*todo], *storage.ArchiveRepo) {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return record.NewStore[*todo](storage.NewKVRepo(db), "todos", nil), storage.NewArchiveRepo(db)
}

func seed(t *testing.T, s *record.Store[*todo], created ...time.Time) {
	t.Helper()
	var rs []*todo
	for i, c := range created {
		rs = append(rs, &todo{Meta: record.Meta{ID: string(rune('a' + i)), CreatedAt: c}, Task: "t"})
	}
	require.NoError(t, s.Save(context.Background(), rs))
}

type exportSpy struct {
	calls   int
	records []*todo
	err     error
}

func (e *exportSpy) export(_ context.Context, rs []*todo) (string, error) {
	e.calls++
	e.records = rs
	if e.err != nil {
		return "", e.err
	}
	return "/exports/todo-list-2025-06-20.pdf", nil
}

func policy(j Journal) Policy {
	return Policy{Now: func() time.Time { return now }, Journal: j}
}

func TestArchiveAtExactlyTenDays(t *testing.T) {
	ctx := context.Background()
	store, runs := newTodoStore(t)
	seed(t, store, now.Add(-864_000_000*time.Millisecond))

	spy := &exportSpy{}
	out, err := Run(ctx, policy(runs), store, spy.export)
	require.NoError(t, err)
	require.True(t, out.Archived)
	require.Equal(t, 10, out.AgeDays)
	require.Equal(t, 1, spy.calls)
	require.Len(t, spy.records, 1)
	require.Equal(t, "a", spy.records[0].ID)
	require.Zero(t, store.Len())

	res, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, record.StatusEmpty, res.Status)

	list, err := runs.ListByKey(ctx, "todos")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1, list[0].RecordCount)
}

func TestNoArchiveJustUnderTenDays(t *testing.T) {
	ctx := context.Background()
	store, _ := newTodoStore(t)
	seed(t, store, now.Add(-(9*Day + 23*time.Hour)))

	spy := &exportSpy{}
	out, err := Run(ctx, policy(nil), store, spy.export)
	require.NoError(t, err)
	require.False(t, out.Archived)
	require.Equal(t, 9, out.AgeDays)
	require.Zero(t, spy.calls)
	require.Equal(t, 1, store.Len())
}

func TestEmptyStoreNeverExports(t *testing.T) {
	store, _ := newTodoStore(t)
	spy := &exportSpy{}
	out, err := Run(context.Background(), policy(nil), store, spy.export)
	require.NoError(t, err)
	require.False(t, out.Due)
	require.Zero(t, spy.calls)
}

func TestOldestRecordDecides(t *testing.T) {
	store, _ := newTodoStore(t)
	seed(t, store, now.Add(-time.Hour), now.Add(-11*Day), now.Add(-2*Day))

	spy := &exportSpy{}
	out, err := Run(context.Background(), policy(nil), store, spy.export)
	require.NoError(t, err)
	require.True(t, out.Archived)
	require.Equal(t, "b", out.OldestID)
	require.Len(t, spy.records, 3)
}

func TestEvaluateTiesPickFirst(t *testing.T) {
	c := now.Add(-3 * Day)
	rs := []record.Record{
		&todo{Meta: record.Meta{ID: "first", CreatedAt: c}},
		&todo{Meta: record.Meta{ID: "second", CreatedAt: c}},
	}
	d := Policy{}.Evaluate(rs, now)
	require.Equal(t, "first", d.OldestID)
	require.False(t, d.Due)
	require.Equal(t, 3, d.AgeDays)
}

func TestExportFailureKeepsRecords(t *testing.T) {
	ctx := context.Background()
	store, runs := newTodoStore(t)
	seed(t, store, now.Add(-30*Day), now.Add(-Day))

	boom := errors.New("pdf: font missing")
	spy := &exportSpy{err: boom}
	out, err := Run(ctx, policy(runs), store, spy.export)
	require.ErrorIs(t, err, ErrExportFailed)
	require.ErrorIs(t, err, boom)
	require.False(t, out.Archived)
	require.Equal(t, 2, store.Len())

	res, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, record.StatusOK, res.Status)
	require.Len(t, res.Records, 2)

	list, err := runs.ListByKey(ctx, "todos")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCustomThreshold(t *testing.T) {
	rs := []record.Record{&todo{Meta: record.Meta{ID: "a", CreatedAt: now.Add(-3 * Day)}}}
	require.True(t, Policy{Threshold: 3 * Day}.Evaluate(rs, now).Due)
	require.False(t, Policy{Threshold: 4 * Day}.Evaluate(rs, now).Due)
}

func TestPartDayThresholdRoundsUp(t *testing.T) {
	p := Policy{Threshold: 36 * time.Hour}
	oneDay := []record.Record{&todo{Meta: record.Meta{ID: "a", CreatedAt: now.Add(-Day - 13*time.Hour)}}}
	require.False(t, p.Evaluate(oneDay, now).Due)

	twoDays := []record.Record{&todo{Meta: record.Meta{ID: "a", CreatedAt: now.Add(-2 * Day)}}}
	require.True(t, p.Evaluate(twoDays, now).Due)
}

func TestEvaluateIgnoresUndatedRecords(t *testing.T) {
	rs := []record.Record{
		&todo{Meta: record.Meta{ID: "legacy"}},
		&todo{Meta: record.Meta{ID: "dated", CreatedAt: now.Add(-2 * Day)}},
	}
	d := Policy{}.Evaluate(rs, now)
	require.Equal(t, "dated", d.OldestID)
	require.False(t, d.Due)

	d = Policy{}.Evaluate([]record.Record{&todo{Meta: record.Meta{ID: "legacy"}}}, now)
	require.False(t, d.Due)
	require.Empty(t, d.OldestID)
}
