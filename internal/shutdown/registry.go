// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shutdown

import (
	"context"
	"sync"

	"github.com/matt-FFFFFF/pace/internal/ctxlog"
)

// Hook is a cleanup function executed during shutdown.
type Hook func()

type registryKey struct{}

// NewContext returns a context carrying the registry.
func NewContext(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// FromContext returns the registry stored in the context, if any.
func FromContext(ctx context.Context) (*Registry, bool) {
	r, ok := ctx.Value(registryKey{}).(*Registry)

	return r, ok
}

// Registry is a process-scoped collection of cleanup hooks. It is constructed
// once and injected into the components that need shutdown behaviour, rather
// than being accessed as an ambient singleton, so the core stays testable
// without process-level side effects.
//
// Every hook runs at most once per registration per shutdown event: RunAll
// consumes hooks as it executes them.
type Registry struct {
	mu     sync.Mutex
	hooks  map[uint64]Hook
	order  []uint64
	nextID uint64
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make(map[uint64]Hook),
	}
}

// Register adds a hook and returns a detach function. Detaching after the
// hook has already run (or detaching twice) is a no-op.
func (r *Registry) Register(h Hook) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.hooks[id] = h
	r.order = append(r.order, id)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.hooks, id)
	}
}

// Len returns the number of currently attached hooks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.hooks)
}

// RunAll executes all attached hooks in registration order and detaches them.
// A panicking hook is recovered and logged so remaining hooks still run.
func (r *Registry) RunAll(ctx context.Context) {
	r.mu.Lock()

	order := r.order
	hooks := make([]Hook, 0, len(order))

	for _, id := range order {
		if h, ok := r.hooks[id]; ok {
			hooks = append(hooks, h)
		}
	}

	r.hooks = make(map[uint64]Hook)
	r.order = nil
	r.mu.Unlock()

	for _, h := range hooks {
		runHook(ctx, h)
	}
}

func runHook(ctx context.Context, h Hook) {
	defer func() {
		if rec := recover(); rec != nil {
			ctxlog.Error(ctx, "shutdown hook panicked", "panic", rec)
		}
	}()

	h()
}
