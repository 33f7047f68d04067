// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "time"

// Options configures rendering and session behaviour.
type Options struct {
	// BarLength is the visual width of the bar in characters.
	BarLength int
	// FilledChar is the glyph used for the completed part of the bar.
	FilledChar string
	// EmptyChar is the glyph used for the remaining part of the bar.
	EmptyChar string
	// UseColors enables ANSI decoration of the rendered line. Decoration is
	// additionally subject to process-wide color detection (NO_COLOR etc.).
	UseColors bool
	// ShowETA toggles the estimated-time-remaining stat field.
	ShowETA bool
	// ShowSpeed toggles the units-per-second stat field.
	ShowSpeed bool
	// ShowPercentage toggles the percentage stat field.
	ShowPercentage bool
	// Precision is the number of decimal places for the percentage.
	Precision int
	// Template, when non-empty, fully replaces the bar/stat layout. Named
	// placeholders are substituted from snapshot fields: {description},
	// {bar}, {current}, {total}, {percentage}, {elapsed}, {eta}, {speed}
	// and {state}.
	Template string
	// UpdateThrottle is the minimum interval between renders. Renders inside
	// the window are dropped, except the one carrying completion, which is
	// always drawn. Zero disables throttling.
	UpdateThrottle time.Duration
	// TickInterval is the period of the autonomous render tick used for
	// indeterminate sessions, so a spinner animates without update events.
	TickInterval time.Duration
	// SpeedSamples is the capacity of the speed smoothing buffer.
	SpeedSamples int
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{
		BarLength:      30,
		FilledChar:     "█",
		EmptyChar:      "░",
		UseColors:      true,
		ShowETA:        true,
		ShowSpeed:      true,
		ShowPercentage: true,
		Precision:      1,
		UpdateThrottle: 0,
		TickInterval:   100 * time.Millisecond,
		SpeedSamples:   DefaultSpeedSamples,
	}
}
