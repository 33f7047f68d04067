// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package multi implements the multi-session demonstration.
package multi

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/matt-FFFFFF/pace/progress"
	"github.com/urfave/cli/v3"
)

const sessionsFlag = "sessions"

// Cmd drives several concurrent sessions through a Manager. Each session
// logs milestone lines on its own rows; concurrent single-line redraw is
// deliberately not attempted when multiple sessions share one terminal.
var Cmd = &cli.Command{
	Name:        "multi",
	Description: "Track several concurrent progress sessions through a manager.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  sessionsFlag,
			Usage: "Number of concurrent sessions",
			Value: 3,
		},
	},
	Action: actionFunc,
}

// lineWriter hides the *os.File so the terminal renderer stays in
// milestone-logging mode and sessions do not fight over one line.
type lineWriter struct {
	io.Writer
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	manager := progress.NewManager(progress.WithSessionFactory(
		func(id string, total float64, description string) *progress.Session {
			return progress.NewSession(total, description,
				progress.WithWriter(lineWriter{os.Stdout}),
			)
		},
	))

	defer manager.Clear() //nolint:errcheck

	count := int(cmd.Int(sessionsFlag))
	totals := []float64{20, 35, 50}

	for i := range count {
		id := string(rune('a' + i%26))
		manager.Add(id, totals[i%len(totals)], "task-"+id)
	}

	// Round-robin updates until every session completes.
	for remaining := count; remaining > 0; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
		}

		remaining = 0

		for i := range count {
			id := string(rune('a' + i%26))
			if snap, ok := manager.Update(id, 1); ok && !snap.Complete {
				remaining++
			}
		}
	}

	return nil
}
