package record

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store caches the records of one key and persists the full sequence after
// every mutation, unless an editing session is open.
type Store[T Item[T]] struct {
	mu sync.Mutex

	kv    KV
	key   string
	codec Codec[T]
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	records []T
	editing bool
}

type Option func(*options)

type options struct {
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides how record ids are drawn.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// NewStore binds a store to key. A nil codec means JSONCodec.
func NewStore[T Item[T]](kv KV, key string, codec Codec[T], opts ...Option) *Store[T] {
	o := options{
		log:   zap.NewNop(),
		now:   time.Now,
		newID: newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	return &Store[T]{
		kv:    kv,
		key:   key,
		codec: codec,
		log:   o.log.With(zap.String("key", key)),
		now:   o.now,
		newID: o.newID,
	}
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Store[T]) Key() string { return s.key }

// Load replaces the cache with what is stored under the key. Malformed data
// is reported as StatusCorrupt and leaves the cache empty; only backend
// failures return an error.
func (s *Store[T]) Load(ctx context.Context) (LoadResult[T], error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return LoadResult[T]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ok {
		s.records = nil
		return LoadResult[T]{Status: StatusEmpty}, nil
	}
	records, err := s.codec.Decode(data)
	if err != nil {
		s.records = nil
		s.log.Warn("stored records unreadable; treating as empty", zap.Error(err))
		return LoadResult[T]{Status: StatusCorrupt, Cause: err}, nil
	}

	s.records = records
	s.log.Debug("records loaded", zap.Int("count", len(records)))
	return LoadResult[T]{Status: StatusOK, Records: cloneRecords(records)}, nil
}

// Save overwrites the stored sequence and the cache with records.
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = cloneRecords(records)
	return s.write(ctx)
}

// Records returns a copy of the cached sequence. Later mutations never show
// through it, and changing it never reaches the cache.
func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Append assigns rec a fresh id and creation time, then caches a copy of it
// and persists.
func (s *Store[T]) Append(ctx context.Context, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := rec.RecordMeta()
	m.ID = s.uniqueID()
	m.CreatedAt = s.now().UTC()

	s.records = append(s.records, rec.Clone())
	if err := s.persist(ctx); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	s.log.Debug("record appended", zap.String("id", m.ID))
	return nil
}

// Update applies patch to a copy of the record with the given id, swaps the
// copy in and persists. The id and creation time survive any patch. Unknown
// ids are a no-op reporting false. A failed write restores the old record.
func (s *Store[T]) Update(ctx context.Context, id string, patch func(T)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	prev := s.records[idx]
	next := prev.Clone()
	patch(next)
	*next.RecordMeta() = *prev.RecordMeta()

	s.records[idx] = next
	if err := s.persist(ctx); err != nil {
		s.records[idx] = prev
		return true, err
	}
	return true, nil
}

// Clear empties the cache and removes the key.
func (s *Store[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return err
	}
	s.log.Info("store cleared")
	return nil
}

// BeginEdit suppresses writes until EndEdit.
func (s *Store[T]) BeginEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
}

// EndEdit closes the editing session and writes the sequence once.
func (s *Store[T]) EndEdit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return nil
	}
	s.editing = false
	return s.write(ctx)
}

func (s *Store[T]) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *Store[T]) persist(ctx context.Context) error {
	if s.editing {
		return nil
	}
	return s.write(ctx)
}

func (s *Store[T]) write(ctx context.Context) error {
	data, err := s.codec.Encode(s.records)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, s.key, data)
}

func (s *Store[T]) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store[T]) indexOf(id string) int {
	for i, r := range s.records {
		if r.RecordMeta().ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords[T Item[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
