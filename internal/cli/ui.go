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


package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors for terminal UI rendering.
var (
	Purple = lipgloss.Color("99")
	Gray   = lipgloss.Color("245")
	White  = lipgloss.Color("15")
	Teal   = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section represents a header with its corresponding rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// compactMaxColWidth is the maximum column width before truncation.
const compactMaxColWidth = 50

// PrintCompactTable renders a compact column-aligned table (kubectl-style).
// Headers are uppercase purple and data rows alternate teal and white.
// Whitespace runs inside cells collapse to one space and long values are
// truncated with an ellipsis.
func PrintCompactTable(
	w io.Writer,
	sections []Section,
) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)
	evenStyle := lipgloss.NewStyle().Foreground(Teal)
	oddStyle := lipgloss.NewStyle().Foreground(White)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)

	const colGap = 2

	for _, section := range sections {
		if section.Title != "" {
			_, _ = fmt.Fprintf(w, "\n  %s:\n", titleStyle.Render(section.Title))
		} else {
			_, _ = fmt.Fprintln(w)
		}

		flatRows := make([][]string, len(section.Rows))
		for r, row := range section.Rows {
			flat := make([]string, len(row))
			for c, cell := range row {
				flat[c] = strings.Join(strings.Fields(cell), " ")
			}
			flatRows[r] = flat
		}

		widths := columnWidths(section.Headers, flatRows)

		var hdr strings.Builder
		hdr.WriteString("  ")
		for i, h := range section.Headers {
			hdr.WriteString(headerStyle.Render(pad(strings.ToUpper(h), widths[i], colGap, i == len(widths)-1)))
		}
		_, _ = fmt.Fprintln(w, hdr.String())

		for r, row := range flatRows {
			rowStyle := evenStyle
			if r%2 != 0 {
				rowStyle = oddStyle
			}

			var line strings.Builder
			line.WriteString("  ")
			for i := range section.Headers {
				cell := ""
				if i < len(row) {
					cell = truncate(row[i], widths[i])
				}
				line.WriteString(rowStyle.Render(pad(cell, widths[i], colGap, i == len(widths)-1)))
			}
			_, _ = fmt.Fprintln(w, line.String())
		}
	}
}

// KVMinColWidth is the minimum visual width for each key-value column.
const KVMinColWidth = 20

// PrintKV prints labeled key-value pairs on a single indented line.
// Arguments alternate between labels and values: label1, val1, label2, val2, ...
func PrintKV(
	w io.Writer,
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if pw := lipgloss.Width(pair); pw > maxWidth {
			maxWidth = pw
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			line.WriteString(strings.Repeat(" ", maxWidth-lipgloss.Width(pair)+4))
		}
	}
	_, _ = fmt.Fprintln(w, line.String())
}

// recordLine is the subset of a report record shown in tables.
type recordLine struct {
	Timestamp        string `json:"timestamp"`
	ServerObservedIP string `json:"server_observed_ip"`
	ClientReportedIP string `json:"client_reported_ip"`
	ClientUserAgent  string `json:"client_user_agent"`
	Referer          string `json:"referer"`
}

// BuildRecordSection turns raw report log lines into a table section.
// Lines that are not JSON objects are shown verbatim in the agent column.
func BuildRecordSection(
	title string,
	lines []string,
) Section {
	section := Section{
		Title:   title,
		Headers: []string{"timestamp", "server ip", "client ip", "user agent", "referer"},
		Rows:    make([][]string, 0, len(lines)),
	}

	for _, line := range lines {
		var rec recordLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			section.Rows = append(section.Rows, []string{"?", "", "", line, ""})
			continue
		}

		section.Rows = append(section.Rows, []string{
			rec.Timestamp,
			SafeString(rec.ServerObservedIP),
			SafeString(rec.ClientReportedIP),
			rec.ClientUserAgent,
			rec.Referer,
		})
	}

	return section
}

// SafeString returns "-" for empty values.
func SafeString(
	s string,
) string {
	if s == "" {
		return "-"
	}

	return s
}

func columnWidths(
	headers []string,
	rows [][]string,
) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i := range widths {
		widths[i] = min(widths[i], compactMaxColWidth)
	}

	return widths
}

func truncate(
	cell string,
	width int,
) string {
	if len(cell) <= width {
		return cell
	}

	return cell[:width-1] + "…"
}

func pad(
	cell string,
	width int,
	gap int,
	last bool,
) string {
	if last {
		return cell
	}

	return fmt.Sprintf("%-*s", width+gap, cell)
}
