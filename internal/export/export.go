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

// Package export copies the report log into portable files, page by page.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ProgressFunc is called after each batch with the running exported count and total.
type ProgressFunc func(exported int, total int)

// Run paginates through the log and writes each line to the exporter. The
// first page is fetched before the exporter is opened, so a fetch failure
// such as a missing log leaves the destination untouched.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	fetcher Fetcher,
	exporter Exporter,
	batchSize int,
	onProgress ProgressFunc,
) (*Result, error) {
	result := &Result{}
	offset := 0

	lines, total, err := fetcher(ctx, batchSize, offset)
	if err != nil {
		return result, fmt.Errorf("fetching entries at offset %d: %w", offset, err)
	}

	if err := exporter.Open(ctx); err != nil {
		return nil, fmt.Errorf("opening exporter: %w", err)
	}

	defer func() {
		if closeErr := exporter.Close(ctx); closeErr != nil {
			logger.Error("closing exporter", slog.String("error", closeErr.Error()))
		}
	}()

	for {
		result.TotalEntries = total

		for _, line := range lines {
			err := exporter.Write(ctx, line)
			switch {
			case errors.Is(err, ErrMalformed):
				result.SkippedEntries++
				logger.Debug("skipping malformed line", slog.Int("offset", offset))
				continue
			case err != nil:
				return result, fmt.Errorf("writing entry: %w", err)
			}
			result.ExportedEntries++
		}

		if onProgress != nil {
			onProgress(result.ExportedEntries+result.SkippedEntries, total)
		}

		offset += len(lines)
		if offset >= total || len(lines) == 0 {
			break
		}

		lines, total, err = fetcher(ctx, batchSize, offset)
		if err != nil {
			return result, fmt.Errorf("fetching entries at offset %d: %w", offset, err)
		}
	}

	return result, nil
}
