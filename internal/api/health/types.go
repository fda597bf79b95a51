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

package health

import (
	"context"
	"log/slog"
	"time"
)

// Checker reports whether the service dependencies are usable.
type Checker interface {
	// CheckHealth returns an error when a dependency is unavailable.
	CheckHealth(ctx context.Context) error
}

// Health serves the liveness, readiness and status probes.
type Health struct {
	// Checker verifies dependencies for readiness and status.
	Checker Checker
	// StartTime is when the server started.
	StartTime time.Time
	// Version is the running build version.
	Version string

	logger *slog.Logger
}

// StatusResponse is the body of the liveness and readiness probes.
type StatusResponse struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`
}

// ComponentHealth is the state of a single dependency.
type ComponentHealth struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`
}

// DetailedStatusResponse is the body of the status endpoint.
type DetailedStatusResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version"`
	Uptime     string                     `json:"uptime"`
	Components map[string]ComponentHealth `json:"components"`
}
