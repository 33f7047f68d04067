// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// SessionFactory builds the session stored by Manager.Add.
type SessionFactory func(id string, total float64, description string) *Session

// Manager owns a keyed collection of independent sessions and routes
// per-key operations to them. Lookups for missing ids are no-ops, never
// errors. No ordering is guaranteed among entries.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  SessionFactory
}

// ManagerOption configures a Manager at construction.
type ManagerOption func(m *Manager)

// WithSessionFactory replaces the default session constructor, e.g. to give
// every session a child of a shared FanoutRenderer.
func WithSessionFactory(f SessionFactory) ManagerOption {
	return func(m *Manager) {
		m.factory = f
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.factory == nil {
		m.factory = func(_ string, total float64, description string) *Session {
			return NewSession(total, description)
		}
	}

	return m
}

// Add constructs a session and stores it under id. An existing session with
// the same id is stopped before being replaced, so its render tick and
// terminal state are never orphaned.
func (m *Manager) Add(id string, total float64, description string) *Session {
	s := m.factory(id, total, description)

	m.mu.Lock()
	prev := m.sessions[id]
	m.sessions[id] = s
	m.mu.Unlock()

	if prev != nil {
		_ = prev.Stop()
	}

	return s
}

// Get returns the session stored under id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]

	return s, ok
}

// Update advances the session stored under id. The returned bool is false
// when no such session exists.
func (m *Manager) Update(id string, amount float64) (Snapshot, bool) {
	s, ok := m.Get(id)
	if !ok {
		return Snapshot{}, false
	}

	return s.Update(amount), true
}

// Complete completes the session stored under id. The returned bool is
// false when no such session exists.
func (m *Manager) Complete(id string) (Snapshot, bool) {
	s, ok := m.Get(id)
	if !ok {
		return Snapshot{}, false
	}

	return s.Complete(), true
}

// Remove stops the session stored under id (if present) and removes the
// entry.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}

	return s.Stop()
}

// Clear stops every session and empties the mapping, aggregating any
// cleanup errors.
func (m *Manager) Clear() error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))

	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}

	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var result *multierror.Error

	for _, s := range sessions {
		result = multierror.Append(result, s.Stop())
	}

	return result.ErrorOrNil()
}

// Len returns the number of stored sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
