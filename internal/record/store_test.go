package record

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type note struct {
	Meta
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func (n *note) Clone() *note { c := *n; return &c }

type memKV struct {
	data   map[string][]byte
	puts   int
	putErr error
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newNoteStore(kv KV, opts ...Option) *Store[*note] {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewStore[*note](kv, "notes", nil, opts...)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)

	in := []*note{
		{Meta: Meta{ID: "a", CreatedAt: fixedNow}, Text: "first", Done: true},
		{Meta: Meta{ID: "b", CreatedAt: fixedNow.Add(-time.Hour)}, Text: "second"},
		{Meta: Meta{ID: "c"}, Text: "no timestamp"},
	}
	require.NoError(t, s.Save(ctx, in))

	res, err := newNoteStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusOK, res.Status)
	if diff := cmp.Diff(in, res.Records); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroCreatedAtIsOmitted(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)

	require.NoError(t, s.Save(ctx, []*note{{Meta: Meta{ID: "1"}, Text: "x"}}))
	require.JSONEq(t, `[{"id":"1","text":"x","done":false}]`, string(kv.data["notes"]))
}

func TestLoadDistinguishesEmptyFromCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)

	res, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusEmpty, res.Status)
	require.Empty(t, res.Records)

	for _, raw := range []string{`[{"id":"a","text":"trunc`, `{"id":"a"}`, `[null]`, `garbage`} {
		kv.data["notes"] = []byte(raw)
		res, err = s.Load(ctx)
		require.NoError(t, err, raw)
		require.Equal(t, StatusCorrupt, res.Status, raw)
		require.Error(t, res.Cause, raw)
		require.Empty(t, res.Records, raw)
		require.Zero(t, s.Len(), raw)
	}

	kv.data["notes"] = []byte(`[]`)
	res, err = s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusOK, res.Status)
	require.Empty(t, res.Records)
}

func TestLoadAcceptsJavaScriptTimestamps(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data["notes"] = []byte(`[{"id":"1717000000000","text":"x","done":false,"createdAt":"2024-05-29T16:26:40.000Z"}]`)

	res, err := newNoteStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusOK, res.Status)
	require.Len(t, res.Records, 1)
	require.True(t, res.Records[0].CreatedAt.Equal(time.Date(2024, 5, 29, 16, 26, 40, 0, time.UTC)))
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	// A generator that repeats itself must not produce duplicates in the store.
	seq := []string{"x", "x", "y", "x", "y", "z"}
	i := 0
	gen := func() string {
		id := seq[i%len(seq)]
		i++
		return id
	}
	s := newNoteStore(kv, WithIDGenerator(gen))
	for n := 0; n < 3; n++ {
		require.NoError(t, s.Append(ctx, &note{Text: fmt.Sprintf("n%d", n)}))
	}

	seen := map[string]bool{}
	for _, r := range s.Records() {
		require.False(t, seen[r.ID], "duplicate id %q", r.ID)
		seen[r.ID] = true
		require.Equal(t, fixedNow, r.CreatedAt)
	}
	require.Len(t, seen, 3)
}

func TestAppendDefaultIDsNeverCollide(t *testing.T) {
	ctx := context.Background()
	s := NewStore[*note](newMemKV(), "notes", nil)

	for n := 0; n < 500; n++ {
		require.NoError(t, s.Append(ctx, &note{Text: "t"}))
	}
	seen := map[string]bool{}
	for _, r := range s.Records() {
		require.NotEmpty(t, r.ID)
		require.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}

func TestAppendPersistsAndRollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)

	require.NoError(t, s.Append(ctx, &note{Text: "kept"}))
	require.Equal(t, 1, kv.puts)

	kv.putErr = errors.New("disk full")
	require.Error(t, s.Append(ctx, &note{Text: "lost"}))
	require.Equal(t, 1, s.Len())
}

func TestUpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	require.NoError(t, s.Append(ctx, &note{Text: "a"}))
	before := string(kv.data["notes"])
	puts := kv.puts

	found, err := s.Update(ctx, "missing", func(n *note) { n.Text = "changed" })
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, before, string(kv.data["notes"]))
	require.Equal(t, puts, kv.puts)
	require.Equal(t, "a", s.Records()[0].Text)
}

func TestUpdateKeepsIdentityFields(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	require.NoError(t, s.Append(ctx, &note{Text: "a"}))
	orig := *s.Records()[0]

	found, err := s.Update(ctx, orig.ID, func(n *note) {
		n.Done = true
		n.ID = "hijacked"
		n.CreatedAt = time.Time{}
	})
	require.NoError(t, err)
	require.True(t, found)

	got := s.Records()[0]
	require.Equal(t, orig.ID, got.ID)
	require.Equal(t, orig.CreatedAt, got.CreatedAt)
	require.True(t, got.Done)

	res, err := newNoteStore(kv).Load(ctx)
	require.NoError(t, err)
	require.True(t, res.Records[0].Done)
}

func TestRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	in := &note{Text: "a"}
	require.NoError(t, s.Append(ctx, in))

	held := s.Records()
	_, err := s.Update(ctx, in.ID, func(n *note) { n.Done = true })
	require.NoError(t, err)
	require.False(t, held[0].Done)

	held[0].Text = "changed"
	in.Text = "changed"
	require.Equal(t, "a", s.Records()[0].Text)
	require.True(t, s.Records()[0].Done)
}

func TestUpdateRestoresRecordOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	require.NoError(t, s.Save(ctx, []*note{{Meta: Meta{ID: "1"}, Text: "a"}}))

	kv.putErr = errors.New("disk full")
	found, err := s.Update(ctx, "1", func(n *note) { n.Text = "b" })
	require.True(t, found)
	require.ErrorIs(t, err, kv.putErr)
	require.Equal(t, "a", s.Records()[0].Text)
}

func TestEditingSessionBatchesWrites(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	require.NoError(t, s.Save(ctx, []*note{{Meta: Meta{ID: "1"}, Text: "a"}}))
	puts := kv.puts

	s.BeginEdit()
	require.True(t, s.Editing())
	_, err := s.Update(ctx, "1", func(n *note) { n.Text = "b" })
	require.NoError(t, err)
	_, err = s.Update(ctx, "1", func(n *note) { n.Text = "c" })
	require.NoError(t, err)
	require.Equal(t, puts, kv.puts)

	require.NoError(t, s.EndEdit(ctx))
	require.False(t, s.Editing())
	require.Equal(t, puts+1, kv.puts)
	require.JSONEq(t, `[{"id":"1","text":"c","done":false}]`, string(kv.data["notes"]))

	require.NoError(t, s.EndEdit(ctx))
	require.Equal(t, puts+1, kv.puts)
}

func TestClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newNoteStore(kv)
	require.NoError(t, s.Append(ctx, &note{Text: "a"}))

	require.NoError(t, s.Clear(ctx))
	require.Zero(t, s.Len())
	_, ok := kv.data["notes"]
	require.False(t, ok)

	res, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusEmpty, res.Status)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "empty", StatusEmpty.String())
	require.Equal(t, "ok", StatusOK.String())
	require.Equal(t, "corrupt", StatusCorrupt.String())
	require.Equal(t, "unknown", Status(42).String())
}
