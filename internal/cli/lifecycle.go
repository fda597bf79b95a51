// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"context"
	"log/slog"
	"time"
)

// ShutdownTimeout bounds how long RunServer waits for the server and the
// shutdown hooks together.
var ShutdownTimeout = 10 * time.Second

// Lifecycle is implemented by long running components.
type Lifecycle interface {
	// Start starts the server without blocking.
	Start()
	// Stop gracefully shuts down the server.
	Stop(ctx context.Context)
}

// ShutdownHook releases a resource after the server stopped accepting
// requests, such as flushing spans or closing the metrics exporter.
type ShutdownHook struct {
	Name string
	Fn   func(ctx context.Context) error
}

// RunServer blocks until ctx is cancelled, stops server and then runs hooks
// in order. A failing hook is logged and does not prevent later hooks.
func RunServer(
	ctx context.Context,
	logger *slog.Logger,
	server Lifecycle,
	hooks ...ShutdownHook,
) {
	<-ctx.Done()
	logger.Info("shutting down", "reason", context.Cause(ctx))

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		ShutdownTimeout,
	)
	defer cancel()

	server.Stop(shutdownCtx)

	for _, hook := range hooks {
		if err := hook.Fn(shutdownCtx); err != nil {
			logger.Warn("shutdown hook failed", "hook", hook.Name, "error", err)
			continue
		}
		logger.Debug("shutdown hook finished", "hook", hook.Name)
	}
}
