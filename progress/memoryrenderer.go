// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
	"time"
)

// Capture is a snapshot plus the instant the renderer received it.
type Capture struct {
	Snapshot Snapshot
	At       time.Time
}

// MemoryRenderer buffers every snapshot it receives instead of writing to an
// external device. It exists for headless use and for tests that assert on
// the exact sequence of rendered snapshots.
type MemoryRenderer struct {
	mu      sync.Mutex
	history []Capture
	last    Snapshot
	hasLast bool
}

// NewMemoryRenderer creates an empty buffering renderer.
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{}
}

// Render implements Renderer by appending the snapshot to the history.
func (r *MemoryRenderer) Render(s Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, Capture{Snapshot: s, At: timeNow()})
	r.last = s
	r.hasLast = true

	return nil
}

// Cleanup implements Renderer. There is nothing to release.
func (r *MemoryRenderer) Cleanup() error {
	return nil
}

// Reset implements Resetter by clearing the buffer.
func (r *MemoryRenderer) Reset() {
	r.Clear()
}

// Clear empties the history and forgets the last snapshot.
func (r *MemoryRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = nil
	r.last = Snapshot{}
	r.hasLast = false
}

// LastProgress returns the most recently rendered snapshot, if any.
func (r *MemoryRenderer) LastProgress() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last, r.hasLast
}

// History returns a copy of the capture history, oldest first. Callers may
// mutate the returned slice freely.
func (r *MemoryRenderer) History() []Capture {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Capture, len(r.history))
	copy(out, r.history)

	return out
}

// Len returns the number of captured snapshots.
func (r *MemoryRenderer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.history)
}
