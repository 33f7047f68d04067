// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failRenderer struct {
	err error
}

func (f failRenderer) Render(Snapshot) error { return f.err }
func (f failRenderer) Cleanup() error        { return f.err }

func TestFanoutRendererBroadcast(t *testing.T) {
	fan := NewFanoutRenderer()
	a := NewMemoryRenderer()
	b := NewMemoryRenderer()

	fan.Attach("a", a)
	fan.Attach("b", b)

	require.NoError(t, fan.Render(Snapshot{Current: 1}))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestFanoutRendererRenderTo(t *testing.T) {
	fan := NewFanoutRenderer()
	a := NewMemoryRenderer()
	b := NewMemoryRenderer()

	fan.Attach("a", a)
	fan.Attach("b", b)

	require.NoError(t, fan.RenderTo("a", Snapshot{Current: 1}))
	require.NoError(t, fan.RenderTo("missing", Snapshot{Current: 1}), "unknown id is a no-op")

	assert.Equal(t, 1, a.Len())
	assert.Zero(t, b.Len())
}

func TestFanoutRendererDetach(t *testing.T) {
	fan := NewFanoutRenderer()
	a := NewMemoryRenderer()

	fan.Attach("a", a)

	_, ok := fan.Child("a")
	require.True(t, ok)

	fan.Detach("a")

	_, ok = fan.Child("a")
	assert.False(t, ok)

	require.NoError(t, fan.Render(Snapshot{Current: 1}))
	assert.Zero(t, a.Len())
}

func TestFanoutRendererAggregatesErrors(t *testing.T) {
	fan := NewFanoutRenderer()

	errA := errors.New("child a broken")
	errB := errors.New("child b broken")

	fan.Attach("a", failRenderer{err: errA})
	fan.Attach("b", failRenderer{err: errB})
	fan.Attach("ok", NewMemoryRenderer())

	err := fan.Cleanup()

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	err = fan.Render(Snapshot{Current: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
}

func TestFanoutRendererResetBroadcasts(t *testing.T) {
	fan := NewFanoutRenderer()
	a := NewMemoryRenderer()

	fan.Attach("a", a)
	fan.Attach("opaque", failRenderer{}) // does not implement Resetter

	require.NoError(t, fan.Render(Snapshot{Current: 1}))
	require.Equal(t, 1, a.Len())

	fan.Reset()

	assert.Zero(t, a.Len())
}
