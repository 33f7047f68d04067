// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads render options from a YAML file. Files are read
// through an afero filesystem so callers and tests can substitute an
// in-memory implementation.
package config
