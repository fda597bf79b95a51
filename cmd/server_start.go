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
	"github.com/spf13/cobra"

	"github.com/retr0h/ipreport/internal/cli"
	"github.com/retr0h/ipreport/internal/telemetry"
)

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the IP reporting server.
Runs until SIGINT or SIGTERM and then shuts down gracefully.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		version := buildVersion().GitVersion

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"ipreport",
			version,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		meter, err := telemetry.InitMeter(appConfig.Telemetry.Metrics)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize meter", err)
		}

		warnInsecureToken(logger)
		logger.Info(
			"report log configured",
			"path", appConfig.Report.LogFile,
			"trust_proxy", appConfig.Security.TrustProxy,
		)

		sm := setupServer(
			logger.With("component", "api"),
			meter.Handler,
			meter.Path,
			version,
		)

		sm.Start()
		cli.RunServer(
			ctx,
			logger,
			sm,
			cli.ShutdownHook{Name: "meter", Fn: meter.Shutdown},
			cli.ShutdownHook{Name: "tracer", Fn: shutdownTracer},
		)
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
