// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// State represents the lifecycle state of a Tracker or Session.
type State int

const (
	// StateIdle means tracking has not started, or was reset.
	StateIdle State = iota
	// StateActive means work is in flight and updates are accepted.
	StateActive
	// StateCompleted means the target was reached or completion was forced.
	// It is terminal except for an explicit Reset.
	StateCompleted
	// StateStopped means the session was halted externally before reaching
	// completion. Sessions only; a Tracker never reports this state.
	StateStopped
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
