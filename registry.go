// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sharedtex

import (
	"sort"
	"sync"
)

// defaultRegistry records renderers created without WithRegistry.
var defaultRegistry = &Registry{}

// Registry tracks live renderer instances for the embedding host.
//
// Every renderer registers itself on successful construction and
// unregisters exactly once when closed, so Count is the number of
// currently live instances. The registry is purely diagnostic: nothing
// in the renderer behaves differently based on its contents.
//
// The embedding layer usually owns one Registry and passes it to every
// renderer it creates:
//
//	reg := sharedtex.NewRegistry()
//	r, err := sharedtex.New(1920, 1080, sharedtex.WithRegistry(reg))
//	...
//	reg.Count() // live renderers for this host
//
// Renderers created without WithRegistry share DefaultRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[int64]*Renderer
	nextID  int64
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[int64]*Renderer),
	}
}

// DefaultRegistry returns the process-wide registry used when no
// WithRegistry option is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Count returns the number of live renderers in this registry.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return len(reg.entries)
}

// IDs returns the ids of live renderers in ascending order.
func (reg *Registry) IDs() []int64 {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	if len(reg.entries) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(reg.entries))
	for id := range reg.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Get returns the live renderer with the given id.
func (reg *Registry) Get(id int64) (*Renderer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.entries[id]
	return r, ok
}

// register assigns the next id and records r. Called once per renderer
// on successful construction.
func (reg *Registry) register(r *Renderer) int64 {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.entries == nil {
		reg.entries = make(map[int64]*Renderer)
	}
	reg.nextID++
	id := reg.nextID
	reg.entries[id] = r
	return id
}

// unregister removes id. Unknown ids are a no-op, which keeps Close
// idempotent.
func (reg *Registry) unregister(id int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	delete(reg.entries, id)
}
