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
	"context"
	"errors"
)

// ErrMalformed is returned by an Exporter for lines it cannot convert.
// Run counts them as skipped instead of failing.
var ErrMalformed = errors.New("malformed record")

// Fetcher returns up to limit log lines starting at offset, plus the total
// number of lines in the log.
type Fetcher func(ctx context.Context, limit int, offset int) ([]string, int, error)

// Exporter writes report log lines to a destination.
type Exporter interface {
	// Open prepares the destination for writing.
	Open(ctx context.Context) error
	// Write writes a single log line.
	Write(ctx context.Context, line string) error
	// Close flushes and releases the destination.
	Close(ctx context.Context) error
}

// Result summarizes a finished export.
type Result struct {
	TotalEntries    int
	ExportedEntries int
	SkippedEntries  int
}
