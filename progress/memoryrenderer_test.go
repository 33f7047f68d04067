// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRendererCapturesEverySnapshot(t *testing.T) {
	r := NewMemoryRenderer()

	for i := 1; i <= 100; i++ {
		require.NoError(t, r.Render(Snapshot{Current: float64(i), Total: 100}))
	}

	assert.Equal(t, 100, r.Len())

	last, ok := r.LastProgress()
	require.True(t, ok)
	assert.InDelta(t, 100.0, last.Current, 0)

	history := r.History()
	require.Len(t, history, 100)
	assert.InDelta(t, 1.0, history[0].Snapshot.Current, 0)
	assert.InDelta(t, 100.0, history[99].Snapshot.Current, 0)
	assert.False(t, history[0].At.After(history[99].At))
}

func TestMemoryRendererHistoryIsACopy(t *testing.T) {
	r := NewMemoryRenderer()
	require.NoError(t, r.Render(Snapshot{Current: 1}))

	history := r.History()
	history[0].Snapshot.Current = 99

	assert.InDelta(t, 1.0, r.History()[0].Snapshot.Current, 0)
}

func TestMemoryRendererClear(t *testing.T) {
	r := NewMemoryRenderer()
	require.NoError(t, r.Render(Snapshot{Current: 1}))

	r.Clear()

	assert.Zero(t, r.Len())

	_, ok := r.LastProgress()
	assert.False(t, ok)
}

func TestMemoryRendererLifecycleNoOps(t *testing.T) {
	r := NewMemoryRenderer()

	require.NoError(t, r.Cleanup())

	_, ok := r.LastProgress()
	assert.False(t, ok, "cleanup does not synthesize snapshots")

	require.NoError(t, r.Render(Snapshot{Current: 1}))
	r.Reset()
	assert.Zero(t, r.Len())
}
