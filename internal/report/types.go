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

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Sentinel errors mapped to HTTP statuses by the api layer.
var (
	// ErrBadRequest is returned when the report body is not a non-empty
	// JSON object.
	ErrBadRequest = errors.New("expected JSON body")
	// ErrStorage is returned when a record could not be appended.
	ErrStorage = errors.New("storing report")
	// ErrForbidden is returned when the admin token does not match.
	ErrForbidden = errors.New("forbidden")
)

// Placeholder written for absent user agent and referer values.
const Placeholder = "-"

// TimestampLayout formats server generated timestamps (UTC, microseconds).
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Payload is the JSON body posted to /report. Every field is optional.
type Payload struct {
	// ClientReportedIP is the public address detected by the page.
	// Defaults to "".
	ClientReportedIP LooseString `json:"client_reported_ip"`
	// UserAgent defaults to the request User-Agent header, then "-".
	UserAgent LooseString `json:"ua"`
	// Timestamp defaults to the receipt time in UTC.
	Timestamp LooseString `json:"ts"`
}

// LooseString accepts any JSON value. Falsy values (null, false, any
// numeric zero, "", [] and {}) decode to empty. Strings keep their value
// and any other value keeps its compact JSON text.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (l *LooseString) UnmarshalJSON(
	data []byte,
) error {
	trimmed := bytes.TrimSpace(data)

	if isFalsy(trimmed) {
		*l = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = LooseString(s)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return err
	}
	*l = LooseString(compact.String())

	return nil
}

func isFalsy(
	data []byte,
) bool {
	switch string(data) {
	case "null", "false", `""`:
		return true
	}

	if len(data) == 0 {
		return false
	}

	switch c := data[0]; {
	case c == '-' || (c >= '0' && c <= '9'):
		var f float64
		return json.Unmarshal(data, &f) == nil && f == 0
	case c == '[':
		var arr []json.RawMessage
		return json.Unmarshal(data, &arr) == nil && len(arr) == 0
	case c == '{':
		var obj map[string]json.RawMessage
		return json.Unmarshal(data, &obj) == nil && len(obj) == 0
	}

	return false
}

// Or returns the value, or fallback when empty.
func (l LooseString) Or(
	fallback string,
) string {
	if l == "" {
		return fallback
	}

	return string(l)
}

// Header is one request header captured in a Record.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header snapshot serialized as a JSON object.
type Headers []Header

// MarshalJSON writes the headers as an object in slice order.
func (h Headers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, hdr := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, hdr.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, hdr.Value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Record is one accepted report as stored in the log.
type Record struct {
	Timestamp        string  `json:"timestamp"`
	ServerObservedIP string  `json:"server_observed_ip"`
	ClientReportedIP string  `json:"client_reported_ip"`
	ClientUserAgent  string  `json:"client_user_agent"`
	Referer          string  `json:"referer"`
	Headers          Headers `json:"headers,omitempty"`
}

// Ack is the response returned for an accepted report.
type Ack struct {
	Status           string `json:"status"`
	ServerObservedIP string `json:"server_observed_ip"`
	ClientReportedIP string `json:"client_reported_ip"`
	ClientUA         string `json:"client_ua"`
}

// RequestMeta carries what the recorder needs from the HTTP request.
type RequestMeta struct {
	// ServerObservedIP is the normalized address computed by clientip.
	ServerObservedIP string
	// UserAgent is the request User-Agent header.
	UserAgent string
	// Referer is the request Referer header.
	Referer string
	// Headers is the request header snapshot.
	Headers Headers
}

func writeJSONString(
	buf *bytes.Buffer,
	s string,
) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}

// trimmedIP returns the client reported address without surrounding space.
func (p *Payload) trimmedIP() string {
	return strings.TrimSpace(string(p.ClientReportedIP))
}
