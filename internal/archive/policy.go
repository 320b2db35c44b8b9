// Package archive decides when a record store has aged out and, when it
// has, exports the store's records and clears it.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dashline/internal/record"
)

const (
	Day = 24 * time.Hour
	// DefaultThreshold is the age of the oldest record that triggers an archive.
	DefaultThreshold = 10 * Day
)

var ErrExportFailed = errors.New("archive export failed")

// Decision is the outcome of evaluating a sequence against the policy.
type Decision struct {
	Due      bool
	AgeDays  int
	OldestID string
	Oldest   time.Time
}

// Outcome reports what Run did.
type Outcome struct {
	Decision
	Archived   bool
	Count      int
	ExportPath string
}

// ExportFunc renders records to a document and returns where it was written.
type ExportFunc[T any] func(ctx context.Context, records []T) (string, error)

// Journal is told about every completed archive.
type Journal interface {
	Insert(ctx context.Context, key string, ranAt time.Time, count int, exportPath string) (int64, error)
}

type Policy struct {
	Threshold time.Duration
	Now       func() time.Time
	Log       *zap.Logger
	Journal   Journal
}

func (p Policy) threshold() time.Duration {
	if p.Threshold <= 0 {
		return DefaultThreshold
	}
	return p.Threshold
}

func (p Policy) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p Policy) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

// Evaluate finds the oldest record (first one wins on ties) and reports
// whether its age in whole days has reached the threshold. A part-day
// threshold rounds up. Records without a creation time have no age.
func (p Policy) Evaluate(records []record.Record, now time.Time) Decision {
	var oldest *record.Meta
	for _, r := range records {
		m := r.RecordMeta()
		if m.CreatedAt.IsZero() {
			continue
		}
		if oldest == nil || m.CreatedAt.Before(oldest.CreatedAt) {
			oldest = m
		}
	}
	if oldest == nil {
		return Decision{}
	}

	ageDays := int(now.Sub(oldest.CreatedAt) / Day)
	thresholdDays := int((p.threshold() + Day - 1) / Day)
	if thresholdDays < 1 {
		thresholdDays = 1
	}
	return Decision{
		Due:      ageDays >= thresholdDays,
		AgeDays:  ageDays,
		OldestID: oldest.ID,
		Oldest:   oldest.CreatedAt,
	}
}

// Run evaluates the store once and, when due, exports every record and then
// clears the store. The store is only cleared after a successful export.
func Run[T record.Item[T]](ctx context.Context, p Policy, store *record.Store[T], export ExportFunc[T]) (Outcome, error) {
	log := p.logger().With(zap.String("key", store.Key()))
	records := store.Records()
	now := p.now()

	generic := make([]record.Record, len(records))
	for i, r := range records {
		generic[i] = r
	}
	out := Outcome{Decision: p.Evaluate(generic, now), Count: len(records)}
	if !out.Due {
		log.Debug("archive not due", zap.Int("age_days", out.AgeDays), zap.Int("count", out.Count))
		return out, nil
	}

	path, err := export(ctx, records)
	if err != nil {
		log.Warn("archive aborted; export failed", zap.Error(err), zap.Int("count", out.Count))
		return out, fmt.Errorf("%w: %s: %w", ErrExportFailed, store.Key(), err)
	}
	out.ExportPath = path

	if err := store.Clear(ctx); err != nil {
		return out, fmt.Errorf("archive clear %s: %w", store.Key(), err)
	}
	out.Archived = true
	log.Info("store archived", zap.Int("count", out.Count), zap.Int("age_days", out.AgeDays), zap.String("path", path))

	if p.Journal != nil {
		if _, err := p.Journal.Insert(ctx, store.Key(), now.UTC(), out.Count, path); err != nil {
			log.Warn("archive journal write failed", zap.Error(err))
		}
	}
	return out, nil
}
