// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Renderer consumes snapshots and turns them into external output.
// Implementations must serialize their own writes: a Session may call Render
// from its autonomous tick concurrently with an update-driven render.
type Renderer interface {
	// Render draws the given snapshot.
	Render(s Snapshot) error
	// Cleanup releases any terminal-visible side effects (cursor
	// visibility, partial lines). It must be safe to call more than once.
	Cleanup() error
}

// Resetter is the optional reset capability of a Renderer. Sessions invoke
// it, when present, as part of their own Reset.
type Resetter interface {
	Reset()
}

func resetRenderer(r Renderer) {
	if rr, ok := r.(Resetter); ok {
		rr.Reset()
	}
}
