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

// Package report records consented IP reports in the append-only log and
// serves the admin view of that log.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/ipreport/internal/clientip"
	"github.com/retr0h/ipreport/internal/logstore"
)

// Outcome labels for the reports counter.
const (
	resultRecorded       = "recorded"
	resultBadRequest     = "bad_request"
	resultStorageFailure = "storage_failure"
)

// Recorder turns report payloads into log records.
type Recorder struct {
	logger         *slog.Logger
	store          logstore.Store
	now            func() time.Time
	includeHeaders bool
	reports        metric.Int64Counter
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the clock used for server generated timestamps.
func WithClock(
	now func() time.Time,
) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithHeaders toggles the request header snapshot in each record.
func WithHeaders(
	include bool,
) Option {
	return func(r *Recorder) {
		r.includeHeaders = include
	}
}

// New creates a Recorder appending to store.
func New(
	logger *slog.Logger,
	store logstore.Store,
	opts ...Option,
) *Recorder {
	r := &Recorder{
		logger:         logger,
		store:          store,
		now:            time.Now,
		includeHeaders: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	counter, err := otel.Meter("ipreport/report").Int64Counter(
		"ipreport.reports",
		metric.WithDescription("Report submissions by outcome."),
	)
	if err != nil {
		logger.Warn("failed to create reports counter", slog.String("error", err.Error()))
	}
	r.reports = counter

	return r
}

// ParsePayload decodes a report body. Absent bodies, bodies that are not
// JSON objects and empty objects yield ErrBadRequest.
func ParsePayload(
	body []byte,
) (*Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, ErrBadRequest
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, ErrBadRequest
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return &payload, nil
}

// Record parses body, appends one record to the log and returns the ack.
// A failed append is returned wrapped in ErrStorage and is not retried.
func (r *Recorder) Record(
	ctx context.Context,
	body []byte,
	meta RequestMeta,
) (*Ack, error) {
	payload, err := ParsePayload(body)
	if err != nil {
		r.count(ctx, resultBadRequest)
		return nil, err
	}

	record := r.build(payload, meta)

	line, err := marshalLine(record)
	if err != nil {
		r.count(ctx, resultStorageFailure)
		return nil, fmt.Errorf("%w: marshal record: %w", ErrStorage, err)
	}

	if err := r.store.Append(ctx, line); err != nil {
		r.count(ctx, resultStorageFailure)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	r.count(ctx, resultRecorded)
	r.logger.DebugContext(
		ctx,
		"report recorded",
		slog.String("server_observed_ip", record.ServerObservedIP),
		slog.String("client_reported_ip", record.ClientReportedIP),
	)

	return &Ack{
		Status:           "ok",
		ServerObservedIP: record.ServerObservedIP,
		ClientReportedIP: record.ClientReportedIP,
		ClientUA:         record.ClientUserAgent,
	}, nil
}

func (r *Recorder) build(
	payload *Payload,
	meta RequestMeta,
) Record {
	record := Record{
		Timestamp:        payload.Timestamp.Or(r.now().UTC().Format(TimestampLayout)),
		ServerObservedIP: meta.ServerObservedIP,
		ClientReportedIP: clientip.Normalize(payload.trimmedIP()),
		ClientUserAgent:  payload.UserAgent.Or(orPlaceholder(meta.UserAgent)),
		Referer:          orPlaceholder(meta.Referer),
	}

	if r.includeHeaders {
		record.Headers = meta.Headers
	}

	return record
}

func (r *Recorder) count(
	ctx context.Context,
	result string,
) {
	if r.reports == nil {
		return
	}

	r.reports.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// HeadersFromHTTP snapshots h ordered by header name. Repeated headers are
// joined with ", ".
func HeadersFromHTTP(
	h http.Header,
) Headers {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Headers, 0, len(names))
	for _, name := range names {
		out = append(out, Header{
			Name:  name,
			Value: strings.Join(h[name], ", "),
		})
	}

	return out
}

// marshalLine serializes v as one JSON line without HTML escaping.
func marshalLine(
	v any,
) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func orPlaceholder(
	s string,
) string {
	if s == "" {
		return Placeholder
	}

	return s
}
