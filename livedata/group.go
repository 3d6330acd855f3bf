/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultGroupMaxSources is the default maximum number of per-source controllers kept by a Group.
const DefaultGroupMaxSources = 100

// Group keeps one Controller per update source, e.g. per live query or table
// subscription shown by a panel. The number of controllers is bounded: when the
// bound is reached, the least recently used controller is evicted and simply
// dropped, since controllers hold no state worth keeping beyond their UI scope.
//
// All controllers of a group share the same options except Source,
// which is set to the source key the controller was created for.
type Group[T any] struct {
	mu    sync.Mutex
	store *lru.Cache[string, *Controller[T]]
	opts  Options
}

// NewGroup creates a new Group keeping at most maxSources controllers.
// Non-positive maxSources is an error.
func NewGroup[T any](maxSources int, opts Options) (*Group[T], error) {
	store, err := lru.New[string, *Controller[T]](maxSources)
	if err != nil {
		return nil, fmt.Errorf("new LRU store for sources: %w", err)
	}
	return &Group[T]{store: store, opts: opts}, nil
}

// MustNewGroup is a version of NewGroup that panics if an error occurs.
func MustNewGroup[T any](maxSources int, opts Options) *Group[T] {
	g, err := NewGroup[T](maxSources, opts)
	if err != nil {
		panic(err)
	}
	return g
}

// GetOrCreate returns the controller for the passed source, creating it with the
// passed initial value if it does not exist yet. Accessing a controller marks it
// as recently used.
func (g *Group[T]) GetOrCreate(source string, initial T) *Controller[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ctrl, ok := g.store.Get(source); ok {
		return ctrl
	}
	opts := g.opts
	opts.Source = source
	ctrl := NewWithOpts(initial, opts)
	g.store.Add(source, ctrl)
	return ctrl
}

// Get returns the controller for the passed source if it exists.
func (g *Group[T]) Get(source string) (*Controller[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Get(source)
}

// Remove drops the controller for the passed source
// and reports whether it was present.
func (g *Group[T]) Remove(source string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Remove(source)
}

// Len returns the number of controllers currently kept.
func (g *Group[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Len()
}
