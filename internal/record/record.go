// Package record implements the persistent record store: an ordered list of
// typed records kept under one key of a local key-value store, written back
// in full after every mutation.
package record

import (
	"context"
	"time"
)

// Meta carries the identity fields every record has. Embed it by value.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// RecordMeta gives the store access to the embedded identity fields.
func (m *Meta) RecordMeta() *Meta { return m }

// Record is satisfied by a pointer to any struct embedding Meta.
type Record interface {
	RecordMeta() *Meta
}

// Item is a Record that can copy itself. A Store never lets a caller hold
// the same value it caches.
type Item[T any] interface {
	Record
	Clone() T
}

// KV is the persistent key-value backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Status says what Load found under the key.
type Status int

const (
	StatusEmpty Status = iota
	StatusOK
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusOK:
		return "ok"
	case StatusCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// LoadResult distinguishes "found nothing" from "found garbage".
// Records is always empty unless Status is StatusOK.
type LoadResult[T any] struct {
	Status  Status
	Records []T
	Cause   error
}
