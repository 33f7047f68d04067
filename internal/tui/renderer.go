// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/pace/progress"
)

// timeRounding keeps displayed durations readable.
const timeRounding = 100 * time.Millisecond

// Renderer drives a bubbletea program from progress snapshots. It satisfies
// the progress.Renderer contract so a Session can use it like any other
// renderer: snapshots are forwarded as messages, Cleanup quits the program
// and waits for it to shut down.
type Renderer struct {
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	closed  bool
}

var (
	_ progress.Renderer = (*Renderer)(nil)
	_ progress.Resetter = (*Renderer)(nil)
)

// New creates the renderer and starts its bubbletea program. Extra program
// options are forwarded to tea.NewProgram; tests use them to detach the
// program from the real terminal.
func New(opts progress.Options, teaOpts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(NewModel(opts), teaOpts...)
	r := &Renderer{
		program: program,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(r.done)

		_, _ = program.Run()
	}()

	return r
}

// Render implements progress.Renderer by forwarding the snapshot to the
// program. Renders after Cleanup are dropped.
func (r *Renderer) Render(s progress.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.program.Send(snapshotMsg{Snapshot: s})

	return nil
}

// Cleanup implements progress.Renderer. It quits the program and blocks
// until the terminal has been restored. Safe to call more than once.
func (r *Renderer) Cleanup() error {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()

		return nil
	}

	r.closed = true
	r.mu.Unlock()

	r.program.Quit()
	<-r.done

	return nil
}

// Reset implements progress.Resetter by clearing the displayed snapshot.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.program.Send(resetMsg{})
}
