// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package spin implements the indeterminate spinner demonstration.
package spin

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/pace/internal/shutdown"
	"github.com/matt-FFFFFF/pace/progress"
	"github.com/urfave/cli/v3"
)

const durationFlag = "duration"

// Cmd runs a spinner for a fixed amount of time.
var Cmd = &cli.Command{
	Name:        "spin",
	Description: "Render an indeterminate spinner while simulated work runs.",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  durationFlag,
			Usage: "How long the simulated work takes",
			Value: 3 * time.Second,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	sessionOpts := []progress.SessionOption{}

	if reg, ok := shutdown.FromContext(ctx); ok {
		sessionOpts = append(sessionOpts, progress.WithShutdown(reg))
	}

	return progress.Spin(ctx, "thinking", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cmd.Duration(durationFlag)):
			return nil
		}
	}, sessionOpts...)
}
