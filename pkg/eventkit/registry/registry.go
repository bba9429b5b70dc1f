// Package registry provides the priority-ordered handler registry backing
// eventkit dispatch.
//
// A Registry maps priorities to insertion-ordered buckets of handlers. The
// iteration order it produces — highest priority bucket first, registration
// order within a bucket — is the dispatch order and a user-visible contract.
//
// Every handler is wrapped in a Guarded mutual-exclusion guard with shared
// pointer ownership, so one dispatch can iterate a snapshot while another
// goroutine inserts, and no handler is ever invoked by two dispatches at the
// same instant.
package registry

import (
	"sort"
	"sync"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
)

// Guarded wraps a handler in a mutual-exclusion lock with shared ownership:
// registry snapshots hand out the same *Guarded to every dispatch.
type Guarded[H any] struct {
	mu sync.Mutex
	h  H
}

// NewGuarded wraps h for exclusive access.
func NewGuarded[H any](h H) *Guarded[H] {
	return &Guarded[H]{h: h}
}

// Lock acquires exclusive access and returns the handler.
//
// A dispatch that reaches a handler already running in another dispatch
// blocks here until it is free. A handler that synchronously re-dispatches
// its own event deadlocks on its own guard; the deferred command path is the
// supported way to do that.
func (g *Guarded[H]) Lock() H {
	g.mu.Lock()
	return g.h
}

// Unlock releases exclusive access.
func (g *Guarded[H]) Unlock() {
	g.mu.Unlock()
}

// Registry is the ordered collection of handlers for one event kind.
//
// It grows monotonically: insertion is the only mutation, and there is no
// removal. A Registry is safe for concurrent use.
type Registry[H any] struct {
	mu      sync.RWMutex
	buckets map[event.Priority][]*Guarded[H]
	order   []event.Priority // bucket keys, sorted descending
	count   int
}

// New creates an empty registry.
func New[H any]() *Registry[H] {
	return &Registry[H]{
		buckets: make(map[event.Priority][]*Guarded[H]),
	}
}

// Insert appends h to the bucket for priority, creating the bucket if
// absent. It always succeeds and returns the guard wrapping h.
func (r *Registry[H]) Insert(priority event.Priority, h H) *Guarded[H] {
	g := NewGuarded(h)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buckets[priority]; !ok {
		// Keep order sorted descending so iteration is highest-first.
		i := sort.Search(len(r.order), func(i int) bool {
			return r.order[i] < priority
		})
		r.order = append(r.order, 0)
		copy(r.order[i+1:], r.order[i:])
		r.order[i] = priority
	}

	r.buckets[priority] = append(r.buckets[priority], g)
	r.count++
	return g
}

// Handlers returns a snapshot of every registered handler, ordered from
// highest priority bucket to lowest and by registration order within a
// bucket.
//
// The snapshot is independent per call: insertions that happen after it is
// taken do not appear in it, so an in-flight dispatch is never retroactively
// extended.
func (r *Registry[H]) Handlers() []*Guarded[H] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Guarded[H], 0, r.count)
	for _, p := range r.order {
		out = append(out, r.buckets[p]...)
	}
	return out
}

// Len returns the number of registered handlers.
func (r *Registry[H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
