// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress tracks the completion state of long-running work and
// renders it to a terminal as a determinate bar or an indeterminate spinner.
//
// The package is layered bottom-up:
//
//   - Calculator turns raw counters into derived metrics (percentage,
//     smoothed speed, ETA) with guarded arithmetic.
//   - Tracker owns the counters and state machine and notifies observers.
//   - Renderer is the output contract; TerminalRenderer, MemoryRenderer and
//     FanoutRenderer are the built-in implementations.
//   - Session composes one Tracker with one Renderer and exposes the
//     user-facing lifecycle (Start, Update, Complete, Stop, Reset).
//   - Manager aggregates independent keyed Sessions.
//   - Run and Spin wrap a task function with a full Session lifecycle.
//
// Normal usage never returns errors for lifecycle misuse: double Complete,
// double Stop and Update-after-complete are all no-ops.
package progress
