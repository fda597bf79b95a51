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

package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetHealthStatus reports version, uptime and per component state.
func (h *Health) GetHealthStatus(
	c echo.Context,
) error {
	storeErr := h.Checker.CheckHealth(c.Request().Context())

	storeComponent := ComponentHealth{Status: "ok"}
	if storeErr != nil {
		errMsg := storeErr.Error()
		storeComponent = ComponentHealth{Status: "error", Error: &errMsg}
	}

	overall := "ok"
	code := http.StatusOK
	if storeErr != nil {
		overall = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, DetailedStatusResponse{
		Status:  overall,
		Version: h.Version,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Components: map[string]ComponentHealth{
			"logstore": storeComponent,
		},
	})
}
