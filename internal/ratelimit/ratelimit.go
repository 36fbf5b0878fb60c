// Package ratelimit guards the chat endpoint with fixed-window request
// counting per client key. Windows are hard cutoffs: a burst straddling
// a window boundary can admit up to twice the capacity in a short span.
// That approximation is accepted, matching the deployed behavior.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter reports whether a request from the given client key is
// admitted. Implementations charge the key's budget on every call.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type entry struct {
	count   int
	resetAt time.Time
}

// Window is the in-process limiter. Entries for idle keys are swept
// once per window so the key space stays bounded. State is per
// instance; use RedisWindow when running more than one replica.
type Window struct {
	mu      sync.Mutex
	entries map[string]*entry

	max    int
	window time.Duration
	now    func() time.Time
	done   chan struct{}
	once   sync.Once
}

func NewWindow(max int, window time.Duration) *Window {
	w := &Window{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go w.sweep()
	return w
}

func (w *Window) Allow(_ context.Context, key string) bool {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entries[key]
	if !ok {
		e = &entry{resetAt: now.Add(w.window)}
		w.entries[key] = e
	}
	if now.After(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(w.window)
	}
	e.count++
	return e.count <= w.max
}

// Close stops the background sweeper.
func (w *Window) Close() {
	w.once.Do(func() { close(w.done) })
}

func (w *Window) sweep() {
	ticker := time.NewTicker(w.window)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.evictExpired()
		}
	}
}

func (w *Window) evictExpired() {
	now := w.now()
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, e := range w.entries {
		if now.After(e.resetAt) {
			delete(w.entries, key)
		}
	}
}
