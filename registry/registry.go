/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"

	"github.com/suparena/bridgekit/errors"
)

// Registry maps type keys (for example "std_msgs/String") to factory
// functions of a single signature F. The factory aggregator owns one
// Registry per factory kind.
//
// It is safe for concurrent use: registration takes the write lock,
// lookups take the read lock. Registrations are rare after startup, so
// concurrent creates contend only on the shared read lock.
type Registry[F any] struct {
	mu        sync.RWMutex
	name      string
	factories map[string]F
}

// New creates an empty registry. The name identifies the factory kind in
// NotFound errors ("type", "subscription", "publisher", ...).
func New[F any](name string) *Registry[F] {
	return &Registry[F]{
		name:      name,
		factories: make(map[string]F),
	}
}

// Name returns the factory kind this registry holds.
func (r *Registry[F]) Name() string { return r.name }

// Register stores the factory for key, overwriting any previous entry.
// Last registration wins: recompiled or reloaded plugin units may
// re-register the same type key.
func (r *Registry[F]) Register(key string, factory F) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
}

// Lookup returns the factory registered under key, if present. It is a
// pure read with no side effects.
func (r *Registry[F]) Lookup(key string) (F, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[key]
	return f, ok
}

// Len returns the number of registered keys.
func (r *Registry[F]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Keys returns all registered type keys in lexicographic order.
func (r *Registry[F]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Create looks up the factory registered under key and invokes it through
// call. A missing key yields errors.ErrNotFound; the caller decides the
// fallback. The factory runs outside the registry lock, so a slow
// constructor never blocks registration or other creates, and a create
// already in flight against an overwritten factory completes with the
// factory it looked up.
func Create[F, R any](r *Registry[F], key string, call func(F) (R, error)) (R, error) {
	f, ok := r.Lookup(key)
	if !ok {
		var zero R
		return zero, errors.NewNotFoundError(r.name, key)
	}
	return call(f)
}
