// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/pace/internal/color"
)

// UpdateFunc reports units of work completed by a task.
type UpdateFunc func(amount float64)

// TaskFunc is a unit of work driven by Run. It receives an update callback
// bound to the surrounding session.
type TaskFunc func(ctx context.Context, update UpdateFunc) error

// failureNotice is where task failure lines are written. Overridable in
// tests.
var failureNotice = func(description string, err error) {
	msg := fmt.Sprintf("✗ %s: %v", description, err)
	fmt.Fprintln(os.Stderr, color.Colorize(msg, color.FgRed, color.Bold))
}

// Run wraps task with a full session lifecycle: the session is started,
// task drives it through the update callback, and on return the session is
// completed (success) or stopped (failure). Task errors are surfaced as a
// failure notice and then returned unchanged; Run never swallows them.
//
// The session is never left running after Run returns: neither active state
// nor the indeterminate render tick survives, under success or failure.
func Run(ctx context.Context, total float64, description string, task TaskFunc, opts ...SessionOption) error {
	s := NewSession(total, description, opts...)

	return runSession(ctx, s, task)
}

// Spin is Run specialized to an indeterminate session: a spinner animates
// while task executes, with no progress target.
func Spin(ctx context.Context, description string, task func(ctx context.Context) error, opts ...SessionOption) error {
	return Run(ctx, 0, description, func(ctx context.Context, _ UpdateFunc) error {
		return task(ctx)
	}, opts...)
}

func runSession(ctx context.Context, s *Session, task TaskFunc) (err error) {
	s.Start()

	defer func() {
		// The session must never leak its tick or terminal state, even if
		// the task panicked.
		_ = s.Stop()
	}()

	if err = task(ctx, func(amount float64) { s.Update(amount) }); err != nil {
		failureNotice(s.Description(), err)
		_ = s.Stop()

		return err
	}

	if s.State() != StateCompleted {
		s.Complete()
	}

	return nil
}
