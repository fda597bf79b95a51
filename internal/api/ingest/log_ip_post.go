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
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DefaultPublicIP is logged when the legacy body has no public_ip.
const DefaultPublicIP = "N/A"

// PostLogIP is the legacy submission path. It only writes to the process
// log, never to the report log.
func (i *Ingest) PostLogIP(
	c echo.Context,
) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, BadRequestMessage)
	}

	var req LogIPRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.String(http.StatusBadRequest, BadRequestMessage)
	}

	publicIP := DefaultPublicIP
	if req.PublicIP != nil {
		publicIP = *req.PublicIP
	}

	serverIP := c.RealIP()

	i.logger.InfoContext(
		c.Request().Context(),
		"legacy ip report",
		slog.String("public_ip", publicIP),
		slog.String("server_ip", serverIP),
	)

	return c.JSON(http.StatusOK, LogIPResponse{
		Status:   "success",
		ServerIP: serverIP,
	})
}
