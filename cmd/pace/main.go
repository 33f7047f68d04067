// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the pace command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/pace"
	"github.com/matt-FFFFFF/pace/cmd/pace/bar"
	"github.com/matt-FFFFFF/pace/cmd/pace/multi"
	"github.com/matt-FFFFFF/pace/cmd/pace/spin"
	"github.com/matt-FFFFFF/pace/internal/ctxlog"
	"github.com/matt-FFFFFF/pace/internal/shutdown"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		bar.Cmd,
		spin.Cmd,
		multi.Cmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "pace",
	Description: `Pace renders progress indicators for long-running command-line work:
determinate bars with smoothed speed and ETA, indeterminate spinners, and
aggregation of multiple concurrent progress sessions. The subcommands are
demonstrations that drive the library end to end.`,
	Usage:     "pace bar --total 50",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	reg := shutdown.NewRegistry()
	ctx = shutdown.NewContext(ctx, reg)

	sigCh := shutdown.Signals(ctx)

	go reg.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", pace.Version, pace.Commit)

	err := rootCmd.Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
