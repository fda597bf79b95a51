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

package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/ipreport/internal/api"
	"github.com/retr0h/ipreport/internal/api/health"
	"github.com/retr0h/ipreport/internal/api/ingest"
	"github.com/retr0h/ipreport/internal/api/logs"
	"github.com/retr0h/ipreport/internal/cli"
	"github.com/retr0h/ipreport/internal/logstore"
	"github.com/retr0h/ipreport/internal/report"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetIndexHandler returns the consent page handler for registration.
	GetIndexHandler() []func(e *echo.Echo)
	// GetReportHandler returns the report handlers for registration.
	GetReportHandler(recorder ingest.Recorder) []func(e *echo.Echo)
	// GetLogsHandler returns the admin log view handler for registration.
	GetLogsHandler(viewer logs.Viewer) []func(e *echo.Echo)
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(checker health.Checker, startTime time.Time, version string) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// setupServer wires the report log into a new API server and registers
// every handler.
func setupServer(
	log *slog.Logger,
	metricsHandler http.Handler,
	metricsPath string,
	version string,
) ServerManager {
	store := logstore.NewFileStore(appFs, appConfig.Report.LogFile)
	recorder := report.New(
		log.With("component", "report"),
		store,
		report.WithHeaders(appConfig.Report.IncludeHeaders),
	)
	viewer := report.NewViewer(store, appConfig.Security.AdminToken)
	checker := &health.StoreChecker{StoreCheck: store.Check}

	var sm ServerManager = api.New(appConfig, log)
	registerHandlers(sm, recorder, viewer, checker, metricsHandler, metricsPath, version)

	return sm
}

func registerHandlers(
	sm ServerManager,
	recorder ingest.Recorder,
	viewer logs.Viewer,
	checker health.Checker,
	metricsHandler http.Handler,
	metricsPath string,
	version string,
) {
	startTime := time.Now()

	handlers := make([]func(e *echo.Echo), 0, 5)
	handlers = append(handlers, sm.GetIndexHandler()...)
	handlers = append(handlers, sm.GetReportHandler(recorder)...)
	handlers = append(handlers, sm.GetLogsHandler(viewer)...)
	handlers = append(handlers, sm.GetHealthHandler(checker, startTime, version)...)
	handlers = append(handlers, sm.GetMetricsHandler(metricsHandler, metricsPath)...)

	sm.RegisterHandlers(handlers)
}

// warnInsecureToken flags admin token settings that leave the log view
// either wide open to a guessable secret or closed entirely.
func warnInsecureToken(
	log *slog.Logger,
) {
	switch {
	case appConfig.Security.AdminToken == "":
		log.Warn("admin token is empty, the log view rejects every request")
	case appConfig.UsesDefaultToken():
		log.Warn(
			"admin token is the built-in default, set ADMIN_TOKEN before exposing the log view",
		)
	}
}
