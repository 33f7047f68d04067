// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/matt-FFFFFF/pace/internal/ctxlog"
	"github.com/matt-FFFFFF/pace/internal/shutdown"
)

// Session composes one Tracker with one Renderer and exposes the
// user-facing lifecycle as an explicit state machine:
//
//	idle -> active -> completed (terminal)
//	       active -> stopped   (halted externally before 100%)
//	stopped/completed -> idle via Reset
//
// A Session exclusively drives its Tracker and Renderer for its lifetime.
// For an indeterminate session (total <= 0) Start launches a periodic render
// tick so a spinner animates without update events; Stop cancels it.
type Session struct {
	mu         sync.Mutex
	tracker    *Tracker
	renderer   Renderer
	opts       Options
	out        io.Writer
	reg        *shutdown.Registry
	detachHook func()
	tickDone   chan struct{}
	state      State
	last       Snapshot
	torndown   bool
	logger     *slog.Logger
}

// SessionOption configures a Session at construction.
type SessionOption func(s *Session)

// WithRenderer supplies a caller-owned renderer. The session takes
// operational ownership (it will call Cleanup and Reset) for its lifetime.
func WithRenderer(r Renderer) SessionOption {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithOptions replaces the default rendering and tick options.
func WithOptions(o Options) SessionOption {
	return func(s *Session) {
		s.opts = o
	}
}

// WithWriter sets the destination for the default terminal renderer.
// Ignored when WithRenderer is also given.
func WithWriter(w io.Writer) SessionOption {
	return func(s *Session) {
		s.out = w
	}
}

// WithShutdown attaches the session to a shutdown registry so abnormal
// termination still restores terminal state.
func WithShutdown(reg *shutdown.Registry) SessionOption {
	return func(s *Session) {
		s.reg = reg
	}
}

// WithTracker supplies a pre-built tracker, e.g. one with a custom
// Calculator.
func WithTracker(t *Tracker) SessionOption {
	return func(s *Session) {
		s.tracker = t
	}
}

// WithLogger sets the logger for observer and lifecycle diagnostics.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates an idle session. A non-positive total produces an
// indeterminate (spinner) session.
func NewSession(total float64, description string, opts ...SessionOption) *Session {
	s := &Session{
		opts:   DefaultOptions(),
		out:    os.Stdout,
		state:  StateIdle,
		logger: ctxlog.DefaultLogger,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.tracker == nil {
		s.tracker = NewTracker(total, description,
			WithCalculator(NewSmoothedCalculator(s.opts.Precision, s.opts.SpeedSamples)),
			WithTrackerLogger(s.logger),
		)
	}

	if s.renderer == nil {
		s.renderer = NewTerminalRenderer(s.out, s.opts)
	}

	s.last = s.tracker.Snapshot()

	return s
}

// Start transitions the session to active. It is a no-op unless the session
// is idle. For indeterminate sessions it begins the autonomous render tick.
func (s *Session) Start() {
	s.mu.Lock()

	if s.state != StateIdle {
		s.mu.Unlock()

		return
	}

	s.state = StateActive
	s.torndown = false

	var tickDone chan struct{}

	if s.tracker.Total() <= 0 && s.opts.TickInterval > 0 {
		tickDone = make(chan struct{})
		s.tickDone = tickDone
	}

	reg := s.reg
	s.mu.Unlock()

	s.tracker.Activate()

	if reg != nil {
		detach := reg.Register(func() { _ = s.Stop() })

		s.mu.Lock()
		s.detachHook = detach
		s.mu.Unlock()
	}

	if tickDone != nil {
		go s.tickLoop(tickDone)
	}
}

// Update advances progress by amount, rendering the resulting snapshot.
// An idle session auto-starts. Once completed, Update is a no-op returning
// the final snapshot. When the update reaches the target, the session
// transitions to completed and tears itself down without re-rendering the
// completion output.
//
// A stopped session keeps counting but no longer renders: Stop already
// released the renderer's terminal state, and drawing again would re-hide
// the cursor with no cleanup left to restore it.
func (s *Session) Update(amount float64) Snapshot {
	s.mu.Lock()

	if s.state == StateCompleted {
		last := s.last
		s.mu.Unlock()

		return last
	}

	idle := s.state == StateIdle
	stopped := s.state == StateStopped
	s.mu.Unlock()

	if idle {
		s.Start()
	}

	snap := s.tracker.Increment(amount)

	s.mu.Lock()
	s.last = snap

	completedNow := snap.Complete && s.state != StateCompleted
	if completedNow {
		s.state = StateCompleted
	}
	s.mu.Unlock()

	if stopped {
		return snap
	}

	if err := s.renderer.Render(snap); err != nil {
		s.logger.Warn("render failed", "error", err, "description", snap.Description)
	}

	if completedNow {
		_ = s.teardown()
	}

	return snap
}

// Complete forces completion, renders the final snapshot once and tears the
// session down. Idempotent: a completed session returns its final snapshot
// with no side effects. Completing a stopped session records the completion
// without rendering, for the same reason Update does not.
func (s *Session) Complete() Snapshot {
	s.mu.Lock()

	if s.state == StateCompleted {
		last := s.last
		s.mu.Unlock()

		return last
	}

	stopped := s.state == StateStopped
	s.mu.Unlock()

	snap := s.tracker.Complete()

	s.mu.Lock()
	s.last = snap
	s.state = StateCompleted
	s.mu.Unlock()

	if stopped {
		return snap
	}

	if err := s.renderer.Render(snap); err != nil {
		s.logger.Warn("render failed", "error", err, "description", snap.Description)
	}

	_ = s.teardown()

	return snap
}

// Stop is the cancellation primitive. It cancels the indeterminate tick,
// detaches the shutdown hook and restores terminal state. Safe to call any
// number of times, from a shutdown hook, at any point in the lifecycle.
// A completed session keeps its completed state; otherwise the session
// becomes stopped. Idle sessions are left untouched.
func (s *Session) Stop() error {
	s.mu.Lock()

	if s.state == StateIdle || s.state == StateStopped {
		s.mu.Unlock()

		return nil
	}

	if s.state != StateCompleted {
		s.state = StateStopped
	}
	s.mu.Unlock()

	return s.teardown()
}

// Reset returns the session, its tracker and its renderer (when it supports
// reset) to a fresh idle state.
func (s *Session) Reset() {
	_ = s.teardown()

	s.tracker.Reset()
	resetRenderer(s.renderer)

	s.mu.Lock()
	s.state = StateIdle
	s.torndown = false
	s.last = s.tracker.Snapshot()
	s.mu.Unlock()
}

// State returns the session state. Note that the session adds StateStopped
// on top of the tracker's own state machine.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Snapshot returns the most recent snapshot the session handled.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Description returns the tracker's label.
func (s *Session) Description() string {
	return s.tracker.Description()
}

// OnProgress registers a progress observer on the underlying tracker and
// returns its detach handle.
func (s *Session) OnProgress(fn ProgressFunc) func() {
	return s.tracker.OnProgress(fn)
}

// OnStateChange registers a state observer on the underlying tracker and
// returns its detach handle.
func (s *Session) OnStateChange(fn StateFunc) func() {
	return s.tracker.OnStateChange(fn)
}

// teardown cancels the tick, detaches the shutdown hook and runs renderer
// cleanup, exactly once per Start.
func (s *Session) teardown() error {
	s.mu.Lock()

	if s.torndown {
		s.mu.Unlock()

		return nil
	}

	s.torndown = true
	done := s.tickDone
	s.tickDone = nil
	detach := s.detachHook
	s.detachHook = nil
	s.mu.Unlock()

	if done != nil {
		close(done)
	}

	if detach != nil {
		detach()
	}

	return s.renderer.Cleanup()
}

// tickLoop drives spinner animation for indeterminate sessions. The loop
// re-checks session state before each render so a tick that fires while
// Stop is in flight does not draw after teardown.
func (s *Session) tickLoop(done chan struct{}) {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			active := s.state == StateActive
			s.mu.Unlock()

			if !active {
				return
			}

			if err := s.renderer.Render(s.tracker.Tick()); err != nil {
				s.logger.Warn("tick render failed", "error", err)
			}
		}
	}
}
