package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// SignalError is the cancellation cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received signal " + e.Signal.String()
}

// NewSignalContext returns a context cancelled on SIGINT or SIGTERM. The signal is
// recorded as the context's cause; see ReceivedSignal.
func NewSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(context.Canceled) }
}

// ReceivedSignal returns the signal that cancelled ctx, or nil.
func ReceivedSignal(ctx context.Context) os.Signal {
	var se *SignalError
	if errors.As(context.Cause(ctx), &se) {
		return se.Signal
	}
	return nil
}
