// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessions builds a manager whose sessions render into per-id memory
// renderers, returned for inspection.
func memorySessions() (*Manager, map[string]*MemoryRenderer) {
	renderers := make(map[string]*MemoryRenderer)

	m := NewManager(WithSessionFactory(
		func(id string, total float64, description string) *Session {
			r := NewMemoryRenderer()
			renderers[id] = r

			return NewSession(total, description, WithRenderer(r))
		},
	))

	return m, renderers
}

func TestManagerAddAndGet(t *testing.T) {
	m, _ := memorySessions()

	s := m.Add("dl", 10, "download")

	require.NotNil(t, s)
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get("dl")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManagerRoutesUpdates(t *testing.T) {
	m, renderers := memorySessions()

	m.Add("a", 10, "first")
	m.Add("b", 10, "second")

	snap, ok := m.Update("a", 3)

	require.True(t, ok)
	assert.InDelta(t, 3.0, snap.Current, 0)
	assert.Equal(t, 1, renderers["a"].Len())
	assert.Zero(t, renderers["b"].Len(), "updates never leak across sessions")
}

func TestManagerMissingIDIsNoOp(t *testing.T) {
	m, _ := memorySessions()

	_, ok := m.Update("nope", 1)
	assert.False(t, ok)

	_, ok = m.Complete("nope")
	assert.False(t, ok)

	require.NoError(t, m.Remove("nope"))
}

func TestManagerComplete(t *testing.T) {
	m, _ := memorySessions()

	m.Add("a", 10, "first")
	m.Update("a", 4)

	snap, ok := m.Complete("a")

	require.True(t, ok)
	assert.True(t, snap.Complete)

	s, _ := m.Get("a")
	assert.Equal(t, StateCompleted, s.State())
	assert.Equal(t, 1, m.Len(), "completion does not evict the session")
}

func TestManagerAddReplacesAndStopsPrevious(t *testing.T) {
	m, _ := memorySessions()

	prev := m.Add("dl", 10, "first attempt")
	prev.Update(2)

	next := m.Add("dl", 20, "second attempt")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, StateStopped, prev.State(), "replaced session is stopped, not orphaned")

	got, ok := m.Get("dl")
	require.True(t, ok)
	assert.Same(t, next, got)
	assert.Equal(t, StateIdle, next.State())
}

func TestManagerRemoveStopsSession(t *testing.T) {
	m, _ := memorySessions()

	s := m.Add("a", 10, "first")
	s.Update(1)

	require.NoError(t, m.Remove("a"))

	assert.Zero(t, m.Len())
	assert.Equal(t, StateStopped, s.State())
}

func TestManagerClear(t *testing.T) {
	m, _ := memorySessions()

	a := m.Add("a", 10, "first")
	b := m.Add("b", 10, "second")
	a.Update(1)

	require.NoError(t, m.Clear())

	assert.Zero(t, m.Len())
	assert.Equal(t, StateStopped, a.State())
	assert.Equal(t, StateIdle, b.State(), "never-started sessions have nothing to stop")
}

func TestManagerFanoutFactory(t *testing.T) {
	fan := NewFanoutRenderer()

	m := NewManager(WithSessionFactory(
		func(id string, total float64, description string) *Session {
			child := NewMemoryRenderer()
			fan.Attach(id, child)

			return NewSession(total, description, WithRenderer(child))
		},
	))

	m.Add("a", 10, "first")
	m.Add("b", 10, "second")

	m.Update("a", 5)

	childA, ok := fan.Child("a")
	require.True(t, ok)
	assert.Equal(t, 1, childA.(*MemoryRenderer).Len())

	childB, ok := fan.Child("b")
	require.True(t, ok)
	assert.Zero(t, childB.(*MemoryRenderer).Len())
}
