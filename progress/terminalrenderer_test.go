// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/pace/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainOptions() Options {
	opts := DefaultOptions()
	opts.UseColors = false
	opts.BarLength = 10
	opts.FilledChar = "#"
	opts.EmptyChar = "-"
	opts.ShowSpeed = false
	opts.ShowETA = false

	return opts
}

// newTestRenderer forces the terminal capabilities instead of detecting
// them, since test buffers are never TTYs.
func newTestRenderer(opts Options, interactive bool) (*TerminalRenderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := NewTerminalRenderer(buf, opts)
	r.term = terminal.New(buf, interactive, 80)

	return r, buf
}

func barSnapshot(current, total, pct float64) Snapshot {
	return Snapshot{
		Current:     current,
		Total:       total,
		Percentage:  pct,
		Description: "copy",
		State:       StateActive,
	}
}

func TestTerminalRendererInteractiveRewritesLine(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), true)

	require.NoError(t, r.Render(barSnapshot(5, 10, 50)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25l", "cursor hidden before first draw")
	assert.Contains(t, out, "\r\x1b[2K", "line cleared before redraw")
	assert.Contains(t, out, "copy [#####-----] 50.0% (5/10)")

	require.NoError(t, r.Render(barSnapshot(6, 10, 60)))

	assert.Equal(t, 1, strings.Count(buf.String(), "\x1b[?25l"), "cursor hidden once")
	assert.Contains(t, buf.String(), "60.0% (6/10)")
}

func TestTerminalRendererCompletionAppendsNewline(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), true)

	s := barSnapshot(10, 10, 100)
	s.Complete = true
	s.State = StateCompleted

	require.NoError(t, r.Render(s))

	assert.True(t, strings.HasSuffix(buf.String(), "\n"), "completed line is terminated")

	before := buf.Len()
	require.NoError(t, r.Render(s))
	assert.Equal(t, before, buf.Len(), "renders after completion are suppressed")
}

func TestTerminalRendererThrottle(t *testing.T) {
	stubClock(t)

	opts := plainOptions()
	opts.UpdateThrottle = 100 * time.Millisecond
	r, buf := newTestRenderer(opts, true)

	require.NoError(t, r.Render(barSnapshot(1, 10, 10)))
	before := buf.Len()

	// The clock has not advanced, so this render falls inside the window.
	require.NoError(t, r.Render(barSnapshot(2, 10, 20)))
	assert.Equal(t, before, buf.Len())

	// Completion is exempt from throttling.
	s := barSnapshot(10, 10, 100)
	s.Complete = true
	require.NoError(t, r.Render(s))
	assert.Greater(t, buf.Len(), before)
	assert.Contains(t, buf.String(), "100.0%")
}

func TestTerminalRendererPlainMilestones(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), false)

	require.NoError(t, r.Render(barSnapshot(0, 100, 0)))
	require.NoError(t, r.Render(barSnapshot(5, 100, 5)))  // same 0% decade, skipped
	require.NoError(t, r.Render(barSnapshot(12, 100, 12)))
	require.NoError(t, r.Render(barSnapshot(14, 100, 14))) // same 10% decade, skipped

	s := barSnapshot(100, 100, 100)
	s.Complete = true
	require.NoError(t, r.Render(s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "0.0%")
	assert.Contains(t, lines[1], "12.0%")
	assert.Contains(t, lines[2], "100.0%")
	assert.NotContains(t, buf.String(), "\x1b[", "no control sequences on plain output")
}

func TestTerminalRendererPlainSpinnerAnnouncesOnce(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), false)

	working := Snapshot{Description: "waiting", Indeterminate: true, State: StateActive}

	require.NoError(t, r.Render(working))
	before := buf.Len()

	require.NoError(t, r.Render(working))
	assert.Equal(t, before, buf.Len(), "repeat spinner frames are noise off-terminal")

	done := working
	done.Complete = true
	done.State = StateCompleted
	require.NoError(t, r.Render(done))

	assert.Contains(t, buf.String(), "✓")
	assert.Equal(t, 2, strings.Count(buf.String(), "waiting"))
}

func TestTerminalRendererSpinnerFramesRotate(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), true)

	working := Snapshot{Description: "waiting", Indeterminate: true, State: StateActive}

	require.NoError(t, r.Render(working))
	require.NoError(t, r.Render(working))

	out := buf.String()
	assert.Contains(t, out, spinnerFrames[0])
	assert.Contains(t, out, spinnerFrames[1])
}

func TestTerminalRendererSparseOptionsFallBackToDefaults(t *testing.T) {
	// A sparse Options literal leaves the glyphs empty; the bar still has to
	// show its fill.
	opts := Options{BarLength: 4, ShowPercentage: true}
	r, buf := newTestRenderer(opts, false)

	require.NoError(t, r.Render(barSnapshot(2, 4, 50)))

	def := DefaultOptions()
	want := strings.Repeat(def.FilledChar, 2) + strings.Repeat(def.EmptyChar, 2)
	assert.Contains(t, buf.String(), "["+want+"]")
}

func TestTerminalRendererTemplate(t *testing.T) {
	opts := plainOptions()
	opts.Template = "{description}: {current}/{total} ({percentage}%) in {elapsed}"
	r, buf := newTestRenderer(opts, false)

	s := barSnapshot(5, 10, 50)
	s.Elapsed = 90 * time.Second

	require.NoError(t, r.Render(s))

	assert.Contains(t, buf.String(), "copy: 5/10 (50.0%) in 1m 30s")
}

func TestTerminalRendererCleanup(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), true)

	require.NoError(t, r.Render(barSnapshot(5, 10, 50)))
	require.NoError(t, r.Cleanup())

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25h", "cursor restored")
	assert.True(t, strings.HasSuffix(out, "\n"), "partial line terminated")

	before := buf.Len()
	require.NoError(t, r.Cleanup())
	assert.Equal(t, before, buf.Len(), "cleanup is idempotent")
}

func TestTerminalRendererResetAllowsFreshRun(t *testing.T) {
	r, buf := newTestRenderer(plainOptions(), false)

	s := barSnapshot(10, 10, 100)
	s.Complete = true
	require.NoError(t, r.Render(s))

	before := buf.Len()
	require.NoError(t, r.Render(barSnapshot(1, 10, 10)))
	assert.Equal(t, before, buf.Len())

	r.Reset()

	require.NoError(t, r.Render(barSnapshot(1, 10, 10)))
	assert.Greater(t, buf.Len(), before)
}
