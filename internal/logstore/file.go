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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var _ Store = (*FileStore)(nil)

var tracer = otel.Tracer("ipreport/logstore")

// NewFileStore creates a FileStore writing to path on appFs.
func NewFileStore(
	appFs afero.Fs,
	path string,
) *FileStore {
	return &FileStore{
		fs:   appFs,
		path: path,
	}
}

// Path returns the location of the log file.
func (s *FileStore) Path() string {
	return s.path
}

// Append writes line and a trailing newline with one write, then syncs the
// file before returning so the record is visible to any later Tail.
func (s *FileStore) Append(
	ctx context.Context,
	line []byte,
) (err error) {
	_, span := tracer.Start(ctx, "logstore.append")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if strings.ContainsAny(string(line), "\r\n") {
		return ErrMultiline
	}

	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	span.SetAttributes(attribute.Int("logstore.bytes", len(buf)))

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing log line: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("syncing log file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}

	return nil
}

// Tail re-reads the log file and returns its last n lines. A non-positive
// n returns no lines.
func (s *FileStore) Tail(
	ctx context.Context,
	n int,
) ([]string, error) {
	_, span := tracer.Start(ctx, "logstore.tail")
	defer span.End()

	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if n <= 0 {
		return []string{}, nil
	}

	lines, err := lastLines(f, n)
	if err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	span.SetAttributes(attribute.Int("logstore.lines", len(lines)))

	return lines, nil
}

// Page re-reads the log file and returns up to limit lines starting at
// offset together with the total number of lines.
func (s *FileStore) Page(
	ctx context.Context,
	limit int,
	offset int,
) ([]string, int, error) {
	_, span := tracer.Start(ctx, "logstore.page")
	defer span.End()

	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNotInitialized
		}
		return nil, 0, fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var page []string
	total := 0
	err = eachLine(f, func(line string) {
		if total >= offset && len(page) < limit {
			page = append(page, line)
		}
		total++
	})
	if err != nil {
		return nil, 0, fmt.Errorf("reading log file: %w", err)
	}
	span.SetAttributes(
		attribute.Int("logstore.lines", len(page)),
		attribute.Int("logstore.total", total),
	)

	return page, total, nil
}

// Check verifies the directory holding the log file is reachable.
func (s *FileStore) Check(
	_ context.Context,
) error {
	dir := filepath.Dir(s.path)

	info, err := s.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("log directory not accessible: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("log directory %q is not a directory", dir)
	}

	return nil
}

// lastLines keeps a ring of the most recent n lines read from r.
func lastLines(
	r io.Reader,
	n int,
) ([]string, error) {
	ring := make([]string, n)
	count := 0

	err := eachLine(r, func(line string) {
		ring[count%n] = line
		count++
	})
	if err != nil {
		return nil, err
	}

	size := min(count, n)
	out := make([]string, 0, size)
	for i := count - size; i < count; i++ {
		out = append(out, ring[i%n])
	}

	return out, nil
}

// eachLine calls fn for every line of r without its trailing newline.
func eachLine(
	r io.Reader,
	fn func(line string),
) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
