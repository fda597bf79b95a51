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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/ipreport/internal/cli"
	"github.com/retr0h/ipreport/internal/export"
	"github.com/retr0h/ipreport/internal/logstore"
	"github.com/retr0h/ipreport/internal/validation"
)

var (
	logsExportOutput    string
	logsExportFormat    string
	logsExportBatchSize int
)

// logsExportCmd represents the logsExport command.
var logsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the report log to a file",
	Long: `Export every record of the report log to a JSON-Lines or CSV file.
Lines that are not valid records are skipped and counted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		format := strings.ToLower(logsExportFormat)
		if errMsg, ok := validation.Var(format, "oneof=jsonl csv"); !ok {
			cli.LogFatal(logger, "invalid --format", errors.New(errMsg))
		}
		if errMsg, ok := validation.Var(logsExportBatchSize, "min=1"); !ok {
			cli.LogFatal(logger, "invalid --batch-size", errors.New(errMsg))
		}

		store := logstore.NewFileStore(appFs, appConfig.Report.LogFile)
		exporter := export.NewFileExporter(appFs, logsExportOutput, format)

		result, err := export.Run(
			ctx,
			logger,
			store.Page,
			exporter,
			logsExportBatchSize,
			func(exported int, total int) {
				logger.Debug("export progress", "exported", exported, "total", total)
			},
		)
		if errors.Is(err, logstore.ErrNotInitialized) {
			cli.PrintKV(os.Stdout, "Log", appConfig.Report.LogFile, "Records", "none yet")
			return
		}
		if err != nil {
			cli.LogFatal(logger, "export failed", err)
		}

		if jsonOutput {
			out, _ := json.Marshal(map[string]any{
				"output":   logsExportOutput,
				"total":    result.TotalEntries,
				"exported": result.ExportedEntries,
				"skipped":  result.SkippedEntries,
			})
			fmt.Println(string(out))
			return
		}

		fmt.Println()
		cli.PrintKV(os.Stdout, "Output", logsExportOutput, "Format", format)
		cli.PrintKV(
			os.Stdout,
			"Exported", fmt.Sprintf("%d", result.ExportedEntries),
			"Skipped", fmt.Sprintf("%d", result.SkippedEntries),
		)
	},
}

func init() {
	logsCmd.AddCommand(logsExportCmd)

	logsExportCmd.PersistentFlags().
		StringVarP(&logsExportOutput, "output", "o", "", "Path of the export file")
	logsExportCmd.PersistentFlags().
		StringVar(&logsExportFormat, "format", export.FormatJSONL, "Export format (jsonl, csv)")
	logsExportCmd.PersistentFlags().
		IntVar(&logsExportBatchSize, "batch-size", 500, "Lines read per page")

	_ = logsExportCmd.MarkPersistentFlagRequired("output")
}
