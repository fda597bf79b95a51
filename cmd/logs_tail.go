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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retr0h/ipreport/internal/cli"
	"github.com/retr0h/ipreport/internal/logstore"
	"github.com/retr0h/ipreport/internal/report"
	"github.com/retr0h/ipreport/internal/validation"
)

var logsTailLines int

// logsTailCmd represents the logsTail command.
var logsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the most recent reports",
	Long: `Show the most recent reports from the configured log file.
With --json the raw JSON lines are printed.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		if errMsg, ok := validation.Var(
			logsTailLines,
			fmt.Sprintf("min=1,max=%d", report.MaxTailLines),
		); !ok {
			cli.LogFatal(logger, "invalid --lines", errors.New(errMsg))
		}

		store := logstore.NewFileStore(appFs, appConfig.Report.LogFile)
		lines, err := store.Tail(ctx, logsTailLines)
		if errors.Is(err, logstore.ErrNotInitialized) {
			if !jsonOutput {
				cli.PrintKV(os.Stdout, "Log", appConfig.Report.LogFile, "Records", "none yet")
			}
			return
		}
		if err != nil {
			cli.LogFatal(logger, "failed to read report log", err)
		}

		if jsonOutput {
			for _, line := range lines {
				fmt.Println(line)
			}
			return
		}

		fmt.Println()
		cli.PrintKV(
			os.Stdout,
			"Log", appConfig.Report.LogFile,
			"Records", fmt.Sprintf("%d", len(lines)),
		)
		cli.PrintCompactTable(os.Stdout, []cli.Section{
			cli.BuildRecordSection("Reports", lines),
		})
	},
}

func init() {
	logsCmd.AddCommand(logsTailCmd)

	logsTailCmd.PersistentFlags().
		IntVarP(&logsTailLines, "lines", "n", report.DefaultTailLines, "Number of records to show")
}
