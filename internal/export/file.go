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

package export

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Supported export formats.
const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// CSVHeader is the first row of a CSV export.
var CSVHeader = []string{
	"timestamp",
	"server_observed_ip",
	"client_reported_ip",
	"client_user_agent",
	"referer",
	"headers",
}

// csvRecord is a report record exported to CSV. Headers stay JSON text.
type csvRecord struct {
	Timestamp        string          `json:"timestamp"`
	ServerObservedIP string          `json:"server_observed_ip"`
	ClientReportedIP string          `json:"client_reported_ip"`
	ClientUserAgent  string          `json:"client_user_agent"`
	Referer          string          `json:"referer"`
	Headers          json.RawMessage `json:"headers,omitempty"`
}

// FileExporter writes report log lines to a file as JSON lines or CSV.
type FileExporter struct {
	Path   string
	Format string

	appFs  afero.Fs
	file   io.WriteCloser
	writer *bufio.Writer
	csv    *csv.Writer
}

// NewFileExporter creates a new FileExporter for the given path and format.
func NewFileExporter(
	appFs afero.Fs,
	path string,
	format string,
) *FileExporter {
	return &FileExporter{
		Path:   path,
		Format: format,
		appFs:  appFs,
	}
}

// Open creates the output file and prepares for writing.
func (e *FileExporter) Open(
	_ context.Context,
) error {
	if e.Format != FormatJSONL && e.Format != FormatCSV {
		return fmt.Errorf("unsupported export format: %q", e.Format)
	}

	f, err := e.appFs.OpenFile(e.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening export file: %w", err)
	}

	e.file = f
	e.writer = bufio.NewWriter(f)

	if e.Format == FormatCSV {
		e.csv = csv.NewWriter(e.writer)
		if err := e.csv.Write(CSVHeader); err != nil {
			return fmt.Errorf("writing csv header: %w", err)
		}
	}

	return nil
}

// Write writes one log line. JSON lines are copied verbatim after a
// validity check and CSV rows are built from the record's fields.
func (e *FileExporter) Write(
	_ context.Context,
	line string,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	if e.csv != nil {
		return e.writeCSV(line)
	}

	if !json.Valid([]byte(line)) {
		return ErrMalformed
	}

	if _, err := e.writer.WriteString(line); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	if err := e.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

func (e *FileExporter) writeCSV(
	line string,
) error {
	var rec csvRecord
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return ErrMalformed
	}

	headers := ""
	if len(rec.Headers) > 0 && !bytes.Equal(rec.Headers, []byte("null")) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, rec.Headers); err != nil {
			return ErrMalformed
		}
		headers = buf.String()
	}

	row := []string{
		rec.Timestamp,
		rec.ServerObservedIP,
		rec.ClientReportedIP,
		rec.ClientUserAgent,
		rec.Referer,
		headers,
	}
	if err := e.csv.Write(row); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	return nil
}

// Close flushes the buffer and closes the file.
func (e *FileExporter) Close(
	_ context.Context,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	if e.csv != nil {
		e.csv.Flush()
		if err := e.csv.Error(); err != nil {
			return fmt.Errorf("flushing csv: %w", err)
		}
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("flushing writer: %w", err)
	}

	if err := e.file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	return nil
}
