// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// ANSI control sequences used for in-place progress rendering.
const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
	clearLineSeq  = "\r\x1b[2K"
)

// Terminal wraps an output writer together with the capabilities that were
// detected for it. All cursor and line operations are no-ops when the writer
// is not an interactive terminal, so callers never need to branch on TTY
// state themselves.
type Terminal struct {
	w           io.Writer
	interactive bool
	width       int
}

// Detect inspects w and returns a Terminal with resolved capabilities.
// Interactivity and width are only probed when w is an *os.File backed by
// a TTY; any other writer is treated as non-interactive.
func Detect(w io.Writer) *Terminal {
	t := &Terminal{w: w, width: defaultWidth}

	f, ok := w.(*os.File)
	if !ok {
		return t
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return t
	}

	t.interactive = true

	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		t.width = width
	}

	return t
}

// New returns a Terminal with explicitly set capabilities.
// Intended for tests and for callers that resolve interactivity elsewhere.
func New(w io.Writer, interactive bool, width int) *Terminal {
	if width <= 0 {
		width = defaultWidth
	}

	return &Terminal{w: w, interactive: interactive, width: width}
}

// Interactive reports whether in-place rewriting is supported.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Width returns the detected terminal width in columns.
func (t *Terminal) Width() int {
	return t.width
}

// HideCursor hides the cursor. No-op when non-interactive.
func (t *Terminal) HideCursor() error {
	if !t.interactive {
		return nil
	}

	_, err := io.WriteString(t.w, hideCursorSeq)

	return err
}

// ShowCursor restores the cursor. No-op when non-interactive.
func (t *Terminal) ShowCursor() error {
	if !t.interactive {
		return nil
	}

	_, err := io.WriteString(t.w, showCursorSeq)

	return err
}

// ClearLine returns the cursor to column zero and erases the current line.
// No-op when non-interactive.
func (t *Terminal) ClearLine() error {
	if !t.interactive {
		return nil
	}

	_, err := io.WriteString(t.w, clearLineSeq)

	return err
}

// Print writes s to the underlying writer.
func (t *Terminal) Print(s string) error {
	_, err := io.WriteString(t.w, s)

	return err
}

// Println writes s followed by a newline to the underlying writer.
func (t *Terminal) Println(s string) error {
	_, err := fmt.Fprintln(t.w, s)

	return err
}
