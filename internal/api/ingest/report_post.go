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
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/ipreport/internal/report"
)

// PostReport records a consented report and acknowledges it.
func (i *Ingest) PostReport(
	c echo.Context,
) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) || errors.As(err, &maxErr) {
			return echo.ErrStatusRequestEntityTooLarge
		}
		return c.String(http.StatusBadRequest, BadRequestMessage)
	}

	ack, err := i.recorder.Record(ctx, body, requestMeta(c.Request()))
	switch {
	case errors.Is(err, report.ErrBadRequest):
		return c.String(http.StatusBadRequest, BadRequestMessage)
	case err != nil:
		i.logger.ErrorContext(
			ctx,
			"failed to record report",
			slog.String("error", err.Error()),
		)
		return c.String(http.StatusInternalServerError, StorageFailureMessage)
	}

	return c.JSON(http.StatusOK, ack)
}
