// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// FanoutRenderer routes snapshots to per-key child renderers so multiple
// concurrent sessions can share one renderer front. RenderTo dispatches to a
// single child; Cleanup and Reset broadcast to all of them.
type FanoutRenderer struct {
	mu       sync.RWMutex
	children map[string]Renderer
}

// NewFanoutRenderer creates an empty fan-out renderer.
func NewFanoutRenderer() *FanoutRenderer {
	return &FanoutRenderer{
		children: make(map[string]Renderer),
	}
}

// Attach registers a child renderer under id, replacing any previous child
// with the same id.
func (r *FanoutRenderer) Attach(id string, child Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.children[id] = child
}

// Detach removes the child registered under id, if any.
func (r *FanoutRenderer) Detach(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.children, id)
}

// Child returns the renderer registered under id.
func (r *FanoutRenderer) Child(id string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	child, ok := r.children[id]

	return child, ok
}

// RenderTo dispatches the snapshot to the child registered under id only.
// A missing id is a no-op, not an error.
func (r *FanoutRenderer) RenderTo(id string, s Snapshot) error {
	r.mu.RLock()
	child, ok := r.children[id]
	r.mu.RUnlock()

	if !ok {
		return nil
	}

	return child.Render(s)
}

// Render implements Renderer by broadcasting the snapshot to every child.
func (r *FanoutRenderer) Render(s Snapshot) error {
	var result *multierror.Error

	for _, child := range r.snapshotChildren() {
		result = multierror.Append(result, child.Render(s))
	}

	return result.ErrorOrNil()
}

// Cleanup implements Renderer by broadcasting to every child and
// aggregating their errors.
func (r *FanoutRenderer) Cleanup() error {
	var result *multierror.Error

	for _, child := range r.snapshotChildren() {
		result = multierror.Append(result, child.Cleanup())
	}

	return result.ErrorOrNil()
}

// Reset implements Resetter by broadcasting to every resettable child.
func (r *FanoutRenderer) Reset() {
	for _, child := range r.snapshotChildren() {
		resetRenderer(child)
	}
}

func (r *FanoutRenderer) snapshotChildren() []Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Renderer, 0, len(r.children))
	for _, child := range r.children {
		out = append(out, child)
	}

	return out
}
