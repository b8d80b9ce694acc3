//go:build windows

package cmd

import (
	"context"
	"os"
	"os/signal"
)

// setupShutdownHandler returns a context that is cancelled on interrupt.
// syscall.SIGTERM is not deliverable on Windows, so only os.Interrupt is
// watched. Signal-driven shutdown never flushes state.
func setupShutdownHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
	}()

	return ctx, cancel
}
