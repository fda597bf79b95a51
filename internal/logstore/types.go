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

package logstore

import (
	"context"
	"errors"
	"sync"

	"github.com/spf13/afero"
)

// ErrNotInitialized is returned by Tail when nothing has been appended yet.
var ErrNotInitialized = errors.New("log file does not exist yet")

// ErrMultiline is returned by Append when a line would span several lines.
var ErrMultiline = errors.New("line contains a newline")

// Store is an append-only JSON-Lines log.
type Store interface {
	// Append writes line followed by a newline as a single record.
	Append(ctx context.Context, line []byte) error
	// Tail returns the last n lines in append order.
	Tail(ctx context.Context, n int) ([]string, error)
}

// FileStore is a Store backed by a single file.
type FileStore struct {
	fs   afero.Fs
	path string

	// mu serializes appends so concurrent records never interleave.
	mu sync.Mutex
}
