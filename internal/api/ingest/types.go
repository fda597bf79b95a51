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

package ingest

import (
	"context"
	"log/slog"

	"github.com/retr0h/ipreport/internal/report"
)

// Recorder appends a report to the durable log.
type Recorder interface {
	// Record parses body and appends the resulting record.
	Record(ctx context.Context, body []byte, meta report.RequestMeta) (*report.Ack, error)
}

// Ingest serves the report submission endpoints.
type Ingest struct {
	recorder Recorder
	logger   *slog.Logger
}

// LogIPRequest is the body of the legacy endpoint.
type LogIPRequest struct {
	PublicIP *string `json:"public_ip"`
}

// LogIPResponse is returned by the legacy endpoint.
type LogIPResponse struct {
	Status   string `json:"status"`
	ServerIP string `json:"server_ip"`
}
