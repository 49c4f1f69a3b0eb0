package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/paddison/lesolver/pkg/adapters/http"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests may take once shutdown starts.
const ShutdownTimeout = 5 * time.Second

// NewHTTPHandler builds the HTTP surface of rt.
func NewHTTPHandler(rt *Runtime) http.Handler {
	return httpAdapter.NewHandler(rt.Service,
		httpAdapter.WithLogger(rt.Logger),
		httpAdapter.WithMetrics(rt.Metrics.Handler()),
		httpAdapter.WithResults(rt.Service),
	)
}

// Serve runs the HTTP server on ln until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, rt *Runtime, ln net.Listener) error {
	srv := &http.Server{
		Handler:           NewHTTPHandler(rt),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rt.Logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		rt.Logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			return srv.Close()
		}
		return nil
	})
	return g.Wait()
}
