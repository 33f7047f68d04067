// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "time"

// Snapshot is an immutable record of progress metrics at one instant.
// Values are computed by a Calculator and published by a Tracker; consumers
// must never write to a Snapshot they received.
type Snapshot struct {
	// Current is the number of units completed so far. Never negative.
	Current float64
	// Total is the target number of units. Total <= 0 signals
	// indeterminate mode.
	Total float64
	// Percentage is Current/Total expressed as 0..100, rounded to the
	// configured precision. Always 0 in indeterminate mode.
	Percentage float64
	// Elapsed is the wall-clock time since tracking started.
	Elapsed time.Duration
	// ETA is the estimated time remaining. Zero when no progress has been
	// made, when complete, or when the smoothed speed is zero.
	ETA time.Duration
	// Speed is the smoothed throughput in units per second.
	Speed float64
	// Description is the caller-supplied label. Immutable for the life of
	// the tracker.
	Description string
	// Complete is true when Current has reached Total (Total > 0 only),
	// or when completion was forced.
	Complete bool
	// Indeterminate is true when Total <= 0.
	Indeterminate bool
	// State is the tracker state at capture time.
	State State
	// Timestamp is the instant the snapshot was computed.
	Timestamp time.Time
}
