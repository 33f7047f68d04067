// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shutdown provides a registry of cleanup hooks that run when the
// process receives a termination signal or when the owner triggers them
// explicitly. Progress sessions register hooks here so that an interrupted
// run still restores terminal state (cursor visibility, cleared lines).
package shutdown
