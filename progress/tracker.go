// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"log/slog"
	"sync"
	"time"

	"github.com/matt-FFFFFF/pace/internal/ctxlog"
)

func unixNanosToTime(n int64) time.Time {
	return time.Unix(0, n)
}

// ProgressFunc observes every new snapshot a tracker publishes.
type ProgressFunc func(s Snapshot)

// StateFunc observes tracker state transitions.
type StateFunc func(newState, oldState State)

type progressObserver struct {
	id uint64
	fn ProgressFunc
}

type stateObserver struct {
	id uint64
	fn StateFunc
}

// Tracker owns the progress counters and state machine for one unit of
// tracked work. All mutation goes through its methods; observers receive
// snapshots and must never reach back into the tracker's fields.
//
// Observer registration is an ordered list: the same function registered
// twice is notified twice, delivery follows registration order, and each
// registration detaches independently via its returned handle.
type Tracker struct {
	mu          sync.Mutex
	current     float64
	total       float64
	description string
	start       int64 // unix nanos; 0 means not yet started
	lastUpdate  int64
	calc        Calculator
	state       State
	last        Snapshot
	progressObs []progressObserver
	stateObs    []stateObserver
	nextObsID   uint64
	logger      *slog.Logger
}

// TrackerOption configures a Tracker at construction.
type TrackerOption func(t *Tracker)

// WithCalculator replaces the default smoothed calculator.
func WithCalculator(c Calculator) TrackerOption {
	return func(t *Tracker) {
		t.calc = c
	}
}

// WithTrackerLogger sets the logger used to report observer failures.
func WithTrackerLogger(l *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = l
	}
}

// NewTracker creates an idle tracker. A non-positive total puts the tracker
// in indeterminate mode; this is documented policy, not an error.
func NewTracker(total float64, description string, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		total:       total,
		description: description,
		state:       StateIdle,
		logger:      ctxlog.DefaultLogger,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.calc == nil {
		def := DefaultOptions()
		t.calc = NewSmoothedCalculator(def.Precision, def.SpeedSamples)
	}

	now := timeNow()
	t.start = now.UnixNano()
	t.lastUpdate = t.start
	t.last = t.snapshotLocked()

	return t
}

// Increment advances progress by amount and publishes the resulting
// snapshot. It is a no-op returning the current snapshot once the tracker is
// completed. Negative amounts are treated as zero so progress never moves
// backwards. Fractional amounts are accepted.
func (t *Tracker) Increment(amount float64) Snapshot {
	t.mu.Lock()

	if t.state == StateCompleted {
		s := t.last
		t.mu.Unlock()

		return s
	}

	if amount < 0 {
		amount = 0
	}

	oldState := t.state
	if t.state == StateIdle {
		t.state = StateActive
	}

	t.current += amount
	if t.total > 0 && t.current > t.total {
		t.current = t.total
	}

	now := timeNow()
	t.lastUpdate = now.UnixNano()

	s := t.snapshotLocked()
	if s.Complete && t.state != StateCompleted {
		t.state = StateCompleted
		s.State = StateCompleted
	}

	t.last = s
	newState := t.state
	pObs, sObs := t.observersLocked()
	t.mu.Unlock()

	if newState != oldState {
		t.notifyState(sObs, newState, oldState)
	}

	t.notifyProgress(pObs, s)

	return s
}

// Complete forces the tracker to its target and publishes the completion
// snapshot. It is idempotent: a second call returns the existing snapshot
// without re-notifying observers.
func (t *Tracker) Complete() Snapshot {
	t.mu.Lock()

	if t.state == StateCompleted {
		s := t.last
		t.mu.Unlock()

		return s
	}

	oldState := t.state

	if t.total > 0 {
		t.current = t.total
	}

	t.state = StateCompleted
	t.lastUpdate = timeNow().UnixNano()

	s := t.snapshotLocked()
	s.Complete = true
	s.State = StateCompleted
	t.last = s
	pObs, sObs := t.observersLocked()
	t.mu.Unlock()

	t.notifyState(sObs, StateCompleted, oldState)
	t.notifyProgress(pObs, s)

	return s
}

// Reset returns the tracker to idle with zero progress, fresh timestamps and
// a cleared speed history. Observers are not notified with a progress
// snapshot; renderer-level reset is a separate explicit call.
func (t *Tracker) Reset() {
	t.mu.Lock()

	oldState := t.state
	now := timeNow()
	t.current = 0
	t.start = now.UnixNano()
	t.lastUpdate = t.start
	t.calc.Reset()
	t.state = StateIdle
	t.last = t.snapshotLocked()
	_, sObs := t.observersLocked()
	t.mu.Unlock()

	if oldState != StateIdle {
		t.notifyState(sObs, StateIdle, oldState)
	}
}

// SetTotal updates the target without resetting progress. Current is not
// retroactively validated against the new total; the next snapshot clamps
// the percentage.
func (t *Tracker) SetTotal(total float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = total
}

// Activate transitions an idle tracker to active without recording
// progress. Used by sessions on Start.
func (t *Tracker) Activate() {
	t.mu.Lock()

	if t.state != StateIdle {
		t.mu.Unlock()

		return
	}

	t.state = StateActive
	t.start = timeNow().UnixNano()
	t.lastUpdate = t.start
	t.last.State = StateActive
	_, sObs := t.observersLocked()
	t.mu.Unlock()

	t.notifyState(sObs, StateActive, StateIdle)
}

// Snapshot returns the most recently published snapshot. It does not
// recompute metrics and has no side effects on the speed history.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.last
}

// Tick recomputes the snapshot at the current instant without changing
// progress and without notifying observers. Sessions use it to refresh
// elapsed time for the autonomous spinner tick.
func (t *Tracker) Tick() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.snapshotLocked()
	t.last = s

	return s
}

// State returns the current tracker state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Total returns the current target.
func (t *Tracker) Total() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

// Current returns the units completed so far.
func (t *Tracker) Current() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}

// Description returns the caller-supplied label.
func (t *Tracker) Description() string {
	return t.description
}

// OnProgress registers an observer for published snapshots and returns its
// detach handle. Detaching twice is a no-op.
func (t *Tracker) OnProgress(fn ProgressFunc) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextObsID
	t.nextObsID++
	t.progressObs = append(t.progressObs, progressObserver{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		for i, o := range t.progressObs {
			if o.id == id {
				t.progressObs = append(t.progressObs[:i], t.progressObs[i+1:]...)

				return
			}
		}
	}
}

// OnStateChange registers an observer for state transitions and returns its
// detach handle.
func (t *Tracker) OnStateChange(fn StateFunc) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextObsID
	t.nextObsID++
	t.stateObs = append(t.stateObs, stateObserver{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		for i, o := range t.stateObs {
			if o.id == id {
				t.stateObs = append(t.stateObs[:i], t.stateObs[i+1:]...)

				return
			}
		}
	}
}

// snapshotLocked computes a fresh snapshot. Callers must hold t.mu.
func (t *Tracker) snapshotLocked() Snapshot {
	now := timeNow()
	m := t.calc.Calculate(t.current, t.total, unixNanosToTime(t.start), now)

	complete := m.Complete || t.state == StateCompleted

	return Snapshot{
		Current:       t.current,
		Total:         t.total,
		Percentage:    m.Percentage,
		Elapsed:       m.Elapsed,
		ETA:           m.ETA,
		Speed:         m.Speed,
		Description:   t.description,
		Complete:      complete,
		Indeterminate: m.Indeterminate,
		State:         t.state,
		Timestamp:     now,
	}
}

// observersLocked copies both observer lists so notification can happen
// outside the tracker lock. Callers must hold t.mu.
func (t *Tracker) observersLocked() ([]progressObserver, []stateObserver) {
	pObs := make([]progressObserver, len(t.progressObs))
	copy(pObs, t.progressObs)

	sObs := make([]stateObserver, len(t.stateObs))
	copy(sObs, t.stateObs)

	return pObs, sObs
}

// notifyProgress delivers the snapshot to every observer in registration
// order. A panicking observer is recovered and logged so delivery always
// reaches the remaining observers.
func (t *Tracker) notifyProgress(obs []progressObserver, s Snapshot) {
	for _, o := range obs {
		t.safeNotify(func() { o.fn(s) })
	}
}

func (t *Tracker) notifyState(obs []stateObserver, newState, oldState State) {
	for _, o := range obs {
		t.safeNotify(func() { o.fn(newState, oldState) })
	}
}

func (t *Tracker) safeNotify(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			t.logger.Error("progress observer panicked", "panic", rec, "description", t.description)
		}
	}()

	fn()
}
