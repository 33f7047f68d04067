// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package terminal provides TTY detection and the small set of cursor and
// line operations needed for in-place progress rendering. It centralises all
// "is this a terminal?" logic so renderers can make consistent decisions
// without duplicating platform-specific checks. Every operation degrades to
// a no-op when the output is not interactive.
package terminal
