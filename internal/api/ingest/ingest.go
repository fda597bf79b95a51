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

// Package ingest provides the report submission API handlers.
package ingest

import (
	"log/slog"
	"net/http"

	"github.com/retr0h/ipreport/internal/clientip"
	"github.com/retr0h/ipreport/internal/report"
)

// Response bodies for rejected submissions.
const (
	BadRequestMessage     = "Bad request: expected JSON"
	StorageFailureMessage = "Internal Server Error: report not recorded"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	recorder Recorder,
) *Ingest {
	return &Ingest{
		recorder: recorder,
		logger:   logger,
	}
}

// requestMeta collects what the recorder needs from r. Host is carried
// outside r.Header by net/http and is added back to the snapshot.
func requestMeta(
	r *http.Request,
) report.RequestMeta {
	h := r.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	if r.Host != "" {
		h.Set("Host", r.Host)
	}

	return report.RequestMeta{
		ServerObservedIP: clientip.FromRequest(r),
		UserAgent:        r.UserAgent(),
		Referer:          r.Referer(),
		Headers:          report.HeadersFromHTTP(h),
	}
}
