// Package asynchook moves readthrough.Hooks calls off the Get/Set path onto a
// bounded queue served by a fixed number of workers. Events are dropped when
// the queue is full.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{HitEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	users, _ := readthrough.New(drv, readthrough.Options[int, User]{
//	    Key:    userKey,
//	    Loader: loadUser,
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/readthrough"
)

type Hooks struct {
	inner   readthrough.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards closed against sends racing Close
	closed  bool
	dropped atomic.Uint64
}

var _ readthrough.Hooks = (*Hooks)(nil)

func New(inner readthrough.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) Hit(k string)              { h.try(func() { h.inner.Hit(k) }) }
func (h *Hooks) Miss(k string)             { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) WriteBackSkipped(k string) { h.try(func() { h.inner.WriteBackSkipped(k) }) }
func (h *Hooks) LoadError(k string, err error) {
	h.try(func() { h.inner.LoadError(k, err) })
}
func (h *Hooks) DecodeError(k string, err error) {
	h.try(func() { h.inner.DecodeError(k, err) })
}
func (h *Hooks) DriverError(op, k string, err error) {
	h.try(func() { h.inner.DriverError(op, k, err) })
}
