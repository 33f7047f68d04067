// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI color and formatting codes for terminal output.
// Detection honours the NO_COLOR and FORCE_COLOR conventions and falls back
// to TTY detection on stdout.
package color
