// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides a bubbletea-based renderer for progress sessions,
// used on rich terminals where the plain in-place renderer is not enough.
package tui
