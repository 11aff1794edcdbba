package server

import (
	"context"
	"time"
)

// ShutdownCoordinator gives in-flight requests a grace period before the
// HTTP server is shut down.
type ShutdownCoordinator struct {
	baseCtx     context.Context
	cancel      context.CancelFunc
	gracePeriod time.Duration
}

func NewShutdownCoordinator(gracePeriod time.Duration) *ShutdownCoordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &ShutdownCoordinator{
		baseCtx:     ctx,
		cancel:      cancel,
		gracePeriod: gracePeriod,
	}
}

// BaseContext is the base context for all HTTP requests. It is cancelled
// when shutdown begins so long requests can bail out early.
func (sc *ShutdownCoordinator) BaseContext() context.Context {
	return sc.baseCtx
}

// InitiateShutdown cancels the base context and blocks for the grace
// period before the caller proceeds to server.Shutdown.
func (sc *ShutdownCoordinator) InitiateShutdown() {
	sc.cancel()
	time.Sleep(sc.gracePeriod)
}
