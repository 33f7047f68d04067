// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/pace/internal/color"
	"github.com/matt-FFFFFF/pace/internal/terminal"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// milestoneStep is the percentage granularity of non-interactive logging.
const milestoneStep = 10.0

// TerminalRenderer draws a fixed-width bar for determinate snapshots and a
// rotating spinner frame for indeterminate ones. On an interactive terminal
// it rewrites the current line in place; otherwise it degrades to logging a
// line at 0%, every ~10% step and on completion.
//
// All writes are serialized by an internal mutex so a tick-driven render and
// an update-driven render never interleave their output.
type TerminalRenderer struct {
	mu   sync.Mutex
	opts Options
	term *terminal.Terminal

	lastRender     int64 // unix nanos of the last drawn render
	frame          int
	lastMilestone  float64
	completedDrawn bool
	cursorHidden   bool
	rendered       bool
}

// NewTerminalRenderer creates a renderer writing to w, detecting the
// terminal capabilities of w.
func NewTerminalRenderer(w io.Writer, opts Options) *TerminalRenderer {
	return &TerminalRenderer{
		opts:          opts,
		term:          terminal.Detect(w),
		lastMilestone: -1,
	}
}

// Render implements Renderer. Renders arriving inside the configured
// throttle window are dropped, except the render that carries completion,
// which is always drawn. Once a completion has been drawn, further renders
// are suppressed entirely.
func (r *TerminalRenderer) Render(s Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.completedDrawn {
		return nil
	}

	now := timeNow()

	if !s.Complete && r.opts.UpdateThrottle > 0 && r.rendered {
		if now.UnixNano()-r.lastRender < int64(r.opts.UpdateThrottle) {
			return nil
		}
	}

	line := r.format(s)

	if !r.term.Interactive() {
		return r.renderPlain(s, line, now.UnixNano())
	}

	if !r.cursorHidden {
		if err := r.term.HideCursor(); err != nil {
			return err
		}

		r.cursorHidden = true
	}

	if err := r.term.ClearLine(); err != nil {
		return err
	}

	if err := r.term.Print(line); err != nil {
		return err
	}

	r.rendered = true
	r.lastRender = now.UnixNano()

	if s.Complete {
		r.completedDrawn = true

		return r.term.Print("\n")
	}

	return nil
}

// renderPlain logs milestone lines for non-interactive output.
func (r *TerminalRenderer) renderPlain(s Snapshot, line string, nowNanos int64) error {
	if s.Indeterminate {
		// Without a live terminal a spinner is noise; announce the work
		// once and report again on completion.
		if r.rendered && !s.Complete {
			return nil
		}
	} else {
		milestone := math.Floor(s.Percentage/milestoneStep) * milestoneStep
		if !s.Complete && r.rendered && milestone <= r.lastMilestone {
			return nil
		}

		r.lastMilestone = milestone
	}

	r.rendered = true
	r.lastRender = nowNanos

	if s.Complete {
		r.completedDrawn = true
	}

	return r.term.Println(line)
}

// Cleanup restores the cursor and terminates any partially drawn line.
// It is safe to call multiple times.
func (r *TerminalRenderer) Cleanup() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error

	if r.cursorHidden {
		err = r.term.ShowCursor()
		r.cursorHidden = false

		if r.rendered && !r.completedDrawn {
			if perr := r.term.Print("\n"); err == nil {
				err = perr
			}
		}
	}

	return err
}

// Reset clears throttle, milestone and completion bookkeeping so the
// renderer can serve a fresh tracking run.
func (r *TerminalRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastRender = 0
	r.frame = 0
	r.lastMilestone = -1
	r.completedDrawn = false
	r.rendered = false
}

func (r *TerminalRenderer) format(s Snapshot) string {
	if r.opts.Template != "" {
		return r.expandTemplate(s)
	}

	if s.Indeterminate {
		return r.formatSpinner(s)
	}

	return r.formatBar(s)
}

func (r *TerminalRenderer) formatSpinner(s Snapshot) string {
	frame := spinnerFrames[r.frame%len(spinnerFrames)]
	r.frame++

	if s.Complete {
		frame = r.colorize("✓", color.FgGreen)
	} else {
		frame = r.colorize(frame, color.FgCyan)
	}

	sb := strings.Builder{}
	sb.WriteString(frame)

	if s.Description != "" {
		sb.WriteString(" ")
		sb.WriteString(s.Description)
	}

	sb.WriteString(" ")
	sb.WriteString(r.colorize(formatDuration(s.Elapsed), color.Faint))

	return sb.String()
}

func (r *TerminalRenderer) formatBar(s Snapshot) string {
	sb := strings.Builder{}

	if s.Description != "" {
		sb.WriteString(s.Description)
		sb.WriteString(" ")
	}

	sb.WriteString(r.bar(s))

	if r.opts.ShowPercentage {
		sb.WriteString(fmt.Sprintf(" %.*f%%", r.opts.Precision, s.Percentage))
	}

	sb.WriteString(fmt.Sprintf(" (%s/%s)", formatUnits(s.Current), formatUnits(s.Total)))

	if r.opts.ShowSpeed && s.Speed > 0 {
		sb.WriteString(r.colorize(fmt.Sprintf(" %.1f/s", s.Speed), color.Faint))
	}

	if r.opts.ShowETA && s.ETA > 0 {
		sb.WriteString(r.colorize(" ETA "+formatDuration(s.ETA), color.Faint))
	}

	return sb.String()
}

func (r *TerminalRenderer) bar(s Snapshot) string {
	def := DefaultOptions()

	length := r.opts.BarLength
	if length <= 0 {
		length = def.BarLength
	}

	// Sparse Options literals leave the glyphs empty; an empty glyph would
	// collapse the bar to "[]".
	filledChar := r.opts.FilledChar
	if filledChar == "" {
		filledChar = def.FilledChar
	}

	emptyChar := r.opts.EmptyChar
	if emptyChar == "" {
		emptyChar = def.EmptyChar
	}

	filled := int(math.Round(s.Percentage / 100 * float64(length)))
	if filled > length {
		filled = length
	}

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, length-filled)

	if s.Complete {
		return "[" + r.colorize(bar, color.FgGreen) + "]"
	}

	return "[" + r.colorize(bar, color.FgCyan) + "]"
}

// expandTemplate substitutes {placeholder} fields; when a template is
// configured it fully replaces the bar/stat layout.
func (r *TerminalRenderer) expandTemplate(s Snapshot) string {
	return strings.NewReplacer(
		"{description}", s.Description,
		"{bar}", r.bar(s),
		"{current}", formatUnits(s.Current),
		"{total}", formatUnits(s.Total),
		"{percentage}", fmt.Sprintf("%.*f", r.opts.Precision, s.Percentage),
		"{elapsed}", formatDuration(s.Elapsed),
		"{eta}", formatDuration(s.ETA),
		"{speed}", fmt.Sprintf("%.1f", s.Speed),
		"{state}", s.State.String(),
	).Replace(r.opts.Template)
}

func (r *TerminalRenderer) colorize(str string, codes ...color.Code) string {
	if !r.opts.UseColors || !r.term.Interactive() {
		return str
	}

	return color.Colorize(str, codes...)
}
