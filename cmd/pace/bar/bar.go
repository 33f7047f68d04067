// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package bar implements the determinate progress bar demonstration.
package bar

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/pace/internal/config"
	"github.com/matt-FFFFFF/pace/internal/shutdown"
	"github.com/matt-FFFFFF/pace/internal/tui"
	"github.com/matt-FFFFFF/pace/progress"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	totalFlag    = "total"
	intervalFlag = "interval"
	configFlag   = "config"
	tuiFlag      = "tui"
	templateFlag = "template"
)

// Cmd simulates a unit-by-unit workload and renders it as a bar.
var Cmd = &cli.Command{
	Name:        "bar",
	Description: "Render a determinate progress bar over a simulated workload.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  totalFlag,
			Usage: "Number of work units to simulate",
			Value: 50,
		},
		&cli.DurationFlag{
			Name:  intervalFlag,
			Usage: "Delay between simulated work units",
			Value: 50 * time.Millisecond,
		},
		&cli.StringFlag{
			Name:      configFlag,
			Usage:     "Path to a YAML render options file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  tuiFlag,
			Usage: "Use the bubbletea renderer instead of the plain terminal renderer",
		},
		&cli.StringFlag{
			Name:  templateFlag,
			Usage: "Output template, e.g. '{description} {percentage}% ({current}/{total})'",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	sessionOpts := []progress.SessionOption{progress.WithOptions(opts)}

	if reg, ok := shutdown.FromContext(ctx); ok {
		sessionOpts = append(sessionOpts, progress.WithShutdown(reg))
	}

	if cmd.Bool(tuiFlag) {
		sessionOpts = append(sessionOpts, progress.WithRenderer(tui.New(opts)))
	}

	total := int(cmd.Int(totalFlag))
	interval := cmd.Duration(intervalFlag)

	return progress.Run(ctx, float64(total), "working", func(ctx context.Context, update progress.UpdateFunc) error {
		for range total {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
				update(1)
			}
		}

		return nil
	}, sessionOpts...)
}

func renderOptions(cmd *cli.Command) (progress.Options, error) {
	opts := progress.DefaultOptions()

	if path := cmd.String(configFlag); path != "" {
		loaded, err := config.Load(afero.NewOsFs(), path)
		if err != nil {
			return opts, fmt.Errorf("loading %s: %w", path, err)
		}

		opts = loaded
	}

	if tpl := cmd.String(templateFlag); tpl != "" {
		opts.Template = tpl
	}

	return opts, nil
}
