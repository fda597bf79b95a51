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

package logs

import (
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/ipreport/internal/report"
)

// GetLogs renders the tail of the report log as preformatted text.
func (l *Logs) GetLogs(
	c echo.Context,
) error {
	ctx := c.Request().Context()

	// Unparseable values fall back to the default tail length.
	lines, _ := strconv.Atoi(c.QueryParam("lines"))

	out, err := l.viewer.Tail(ctx, TokenFromRequest(c.Request()), lines)
	switch {
	case errors.Is(err, report.ErrForbidden):
		l.logger.WarnContext(
			ctx,
			"rejected log view",
			slog.String("remote_ip", c.RealIP()),
		)
		return c.String(http.StatusForbidden, ForbiddenMessage)
	case err != nil:
		l.logger.ErrorContext(
			ctx,
			"failed to read log tail",
			slog.String("error", err.Error()),
		)
		return echo.ErrInternalServerError
	}

	if out == nil {
		return c.HTML(http.StatusOK, EmptyLogBody)
	}

	return c.HTML(http.StatusOK, render(out))
}

func render(
	lines []string,
) string {
	var b strings.Builder
	b.WriteString("<pre>")
	for _, line := range lines {
		b.WriteString(html.EscapeString(line))
		b.WriteByte('\n')
	}
	b.WriteString("</pre>")

	return b.String()
}
