package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dashline/internal/archive"
	"dashline/internal/export"
	"dashline/internal/record"
	"dashline/internal/storage"
	"dashline/internal/wallpaper"
)

type Options struct {
	ExportDir    string
	ArchiveAfter time.Duration
	Now          func() time.Time
	Log          *zap.Logger
	Applier      wallpaper.Applier
	NewCanvas    func() export.Canvas
}

// NoticeLevel grades a non-fatal notice raised while opening the stores.
type NoticeLevel string

const (
	NoticeInfo NoticeLevel = "info"
	NoticeWarn NoticeLevel = "warn"
)

type Notice struct {
	Key     string
	Level   NoticeLevel
	Message string
}

type Service struct {
	kv   *storage.KVRepo
	runs *storage.ArchiveRepo

	timeline  *record.Store[*TimelineEntry]
	todos     *record.Store[*Todo]
	workouts  *record.Store[*Workout]
	wallpaper *wallpaper.Store
	picker    *wallpaper.Picker

	exporter *export.Exporter
	policy   archive.Policy
	log      *zap.Logger

	mu      sync.Mutex
	notices []Notice
}

func NewService(db *sql.DB, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	kv := storage.NewKVRepo(db)
	runs := storage.NewArchiveRepo(db)
	storeOpts := []record.Option{record.WithLogger(log), record.WithClock(now)}
	wp := wallpaper.NewStore(kv, opts.Applier, log)

	return &Service{
		kv:        kv,
		runs:      runs,
		timeline:  record.NewStore[*TimelineEntry](kv, KeyTimeline, nil, storeOpts...),
		todos:     record.NewStore[*Todo](kv, KeyTodos, nil, storeOpts...),
		workouts:  record.NewStore[*Workout](kv, KeyWorkouts, nil, storeOpts...),
		wallpaper: wp,
		picker:    wallpaper.NewPicker(wp),
		exporter: &export.Exporter{
			Dir:       opts.ExportDir,
			Now:       now,
			NewCanvas: opts.NewCanvas,
			Log:       log,
		},
		policy: archive.Policy{
			Threshold: opts.ArchiveAfter,
			Now:       now,
			Log:       log,
			Journal:   runs,
		},
		log: log,
	}
}

func (s *Service) KVRepo() *storage.KVRepo           { return s.kv }
func (s *Service) ArchiveRepo() *storage.ArchiveRepo { return s.runs }

// Open loads every store and runs the archive policy on the archivable ones.
// Each key is owned by exactly one goroutine here.
func (s *Service) Open(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.openTimeline(gctx) })
	g.Go(func() error { return openArchivable(gctx, s, s.todos, s.exportTodos) })
	g.Go(func() error { return openArchivable(gctx, s, s.workouts, s.exportWorkouts) })
	g.Go(func() error {
		_, err := s.wallpaper.Load(gctx)
		return err
	})
	return g.Wait()
}

// Close waits for in-flight wallpaper picks.
func (s *Service) Close() {
	s.picker.Wait()
}

// Notices returns what happened during Open that the user should hear about.
func (s *Service) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

func (s *Service) notice(key string, level NoticeLevel, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Key: key, Level: level, Message: fmt.Sprintf(format, args...)})
}

func (s *Service) openTimeline(ctx context.Context) error {
	res, err := s.timeline.Load(ctx)
	if err != nil {
		return err
	}
	switch res.Status {
	case record.StatusOK:
		return nil
	case record.StatusCorrupt:
		s.notice(KeyTimeline, NoticeWarn, "saved timeline was unreadable; restored the default routine")
	}
	return s.timeline.Save(ctx, DefaultTimeline())
}

func openArchivable[T record.Item[T]](ctx context.Context, s *Service, store *record.Store[T], exp archive.ExportFunc[T]) error {
	res, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if res.Status == record.StatusCorrupt {
		s.notice(store.Key(), NoticeWarn, "saved %s were unreadable; starting empty", store.Key())
	}

	out, err := archive.Run(ctx, s.policy, store, exp)
	switch {
	case errors.Is(err, archive.ErrExportFailed):
		s.notice(store.Key(), NoticeWarn, "auto-archive skipped, %d record(s) kept: %v", out.Count, err)
		return nil
	case err != nil:
		return err
	}
	if out.Archived {
		s.notice(store.Key(), NoticeInfo, "archived %d record(s), oldest %d days old, to %s", out.Count, out.AgeDays, out.ExportPath)
	}
	return nil
}
