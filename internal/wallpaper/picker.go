package wallpaper

import (
	"context"
	"sync"
)

// PickResult reports how one pick resolved.
type PickResult struct {
	Applied    bool
	Superseded bool
	Err        error
}

// Picker turns a chosen file into the wallpaper in the background. A later
// pick supersedes any pick still encoding; nothing is cancelled, the stale
// result is simply dropped when it arrives.
type Picker struct {
	store  *Store
	encode func(path string) (string, error)

	mu  sync.Mutex
	gen uint64
	wg  sync.WaitGroup
}

func NewPicker(store *Store) *Picker {
	return &Picker{store: store, encode: EncodeFile}
}

// Pick starts encoding path and returns a channel that receives exactly one result.
func (p *Picker) Pick(ctx context.Context, path string) <-chan PickResult {
	p.mu.Lock()
	p.gen++
	mine := p.gen
	p.mu.Unlock()

	out := make(chan PickResult, 1)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(out)

		value, err := p.encode(path)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.gen != mine {
			out <- PickResult{Superseded: true}
			return
		}
		if err != nil {
			out <- PickResult{Err: err}
			return
		}
		if err := p.store.Set(ctx, value); err != nil {
			out <- PickResult{Err: err}
			return
		}
		out <- PickResult{Applied: true}
	}()
	return out
}

// Wait blocks until every started pick has resolved.
func (p *Picker) Wait() {
	p.wg.Wait()
}
