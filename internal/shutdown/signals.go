// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/pace/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// Signals creates a channel that receives OS signals that should terminate
// the process. By default it listens for SIGINT, SIGTERM, SIGQUIT and
// os.Interrupt.
func Signals(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "shutdown", "detail", "listening for signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel. On the first signal it runs every
// registered hook and cancels the context; a second signal of the same type
// terminates the watch immediately. Watch returns when the channel is closed
// or the context is cancelled.
func (r *Registry) Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Logger(ctx).Info("watchdog",
					"detail", "received second signal of type, forcefully terminating",
					"signal", sig.String())
				cancel()

				return
			}

			seen[sig] = struct{}{}

			ctxlog.Logger(ctx).Info("watchdog",
				"detail", "received signal, running shutdown hooks",
				"signal", sig.String())
			r.RunAll(ctx)
			cancel()
		}
	}
}
