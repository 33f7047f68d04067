// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNonFileWriter(t *testing.T) {
	var buf bytes.Buffer

	term := Detect(&buf)

	assert.False(t, term.Interactive())
	assert.Equal(t, defaultWidth, term.Width())
}

func TestNonInteractiveOpsAreNoOps(t *testing.T) {
	var buf bytes.Buffer

	term := New(&buf, false, 0)

	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ShowCursor())
	require.NoError(t, term.ClearLine())
	assert.Empty(t, buf.String(), "no control sequences expected for non-interactive output")
}

func TestInteractiveOpsEmitSequences(t *testing.T) {
	var buf bytes.Buffer

	term := New(&buf, true, 120)

	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ClearLine())
	require.NoError(t, term.ShowCursor())

	out := buf.String()
	assert.Contains(t, out, hideCursorSeq)
	assert.Contains(t, out, clearLineSeq)
	assert.Contains(t, out, showCursorSeq)
	assert.Equal(t, 120, term.Width())
}

func TestPrintAndPrintln(t *testing.T) {
	var buf bytes.Buffer

	term := New(&buf, false, 0)

	require.NoError(t, term.Print("a"))
	require.NoError(t, term.Println("b"))
	assert.Equal(t, "ab\n", buf.String())
}
