// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger built on log/slog.
// The log level is read from the PACE_LOG_LEVEL environment variable
// ("DEBUG", "INFO", "WARN", "ERROR"; anything else means "WARN") and
// can be changed at runtime via LevelVar.
package ctxlog
