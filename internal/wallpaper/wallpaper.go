// Package wallpaper keeps the single page-background image and applies it.
package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"dashline/internal/record"
)

// Key is the storage key of the wallpaper value.
const Key = "wallpaper"

// Background is how the image is laid out behind the page.
type Background struct {
	Image      string
	Size       string
	Position   string
	Attachment string
}

// Cover returns the cover-fit, centered, fixed background for image.
func Cover(image string) Background {
	return Background{Image: image, Size: "cover", Position: "center", Attachment: "fixed"}
}

// CSS renders the background as a body rule.
func (b Background) CSS() string {
	var sb strings.Builder
	sb.WriteString("body {\n")
	fmt.Fprintf(&sb, "  background-image: url(%q);\n", b.Image)
	fmt.Fprintf(&sb, "  background-size: %s;\n", b.Size)
	fmt.Fprintf(&sb, "  background-position: %s;\n", b.Position)
	fmt.Fprintf(&sb, "  background-attachment: %s;\n", b.Attachment)
	sb.WriteString("}\n")
	return sb.String()
}

type Applier interface {
	Apply(Background)
}

type ApplierFunc func(Background)

func (f ApplierFunc) Apply(b Background) { f(b) }

// Store holds one encoded image. Setting a value replaces the previous one;
// nothing else is kept.
type Store struct {
	mu sync.Mutex

	kv    record.KV
	apply Applier
	log   *zap.Logger

	value string
	set   bool
}

func NewStore(kv record.KV, apply Applier, log *zap.Logger) *Store {
	if apply == nil {
		apply = ApplierFunc(func(Background) {})
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, apply: apply, log: log.With(zap.String("key", Key))}
}

// Load re-applies the persisted wallpaper, if any. An unreadable value counts
// as no wallpaper.
func (s *Store) Load(ctx context.Context) (bool, error) {
	data, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.set = "", false
	if !ok {
		return false, nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil || v == "" {
		s.log.Warn("stored wallpaper unreadable; ignoring", zap.Error(err))
		return false, nil
	}
	s.value, s.set = v, true
	s.apply.Apply(Cover(v))
	return true, nil
}

// Set persists value, replacing any previous wallpaper, and applies it.
func (s *Store) Set(ctx context.Context, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode wallpaper: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Put(ctx, Key, data); err != nil {
		return err
	}
	s.value, s.set = value, true
	s.apply.Apply(Cover(value))
	s.log.Info("wallpaper set", zap.Int("bytes", len(value)))
	return nil
}

// Value returns the current wallpaper and whether one is set.
func (s *Store) Value() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}
