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

package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/cli"
)

type UIPublicTestSuite struct {
	suite.Suite
}

func (s *UIPublicTestSuite) TestBuildRecordSection() {
	tests := []struct {
		name         string
		lines        []string
		validateFunc func(section cli.Section)
	}{
		{
			name: "when lines are records maps fields to columns",
			lines: []string{
				`{"timestamp":"2026-10-19T08:30:15.123456","server_observed_ip":"203.0.113.5","client_reported_ip":"8.8.8.8","client_user_agent":"test-agent","referer":"-"}`,
			},
			validateFunc: func(section cli.Section) {
				s.Len(section.Headers, 5)
				s.Equal(
					[][]string{{"2026-10-19T08:30:15.123456", "203.0.113.5", "8.8.8.8", "test-agent", "-"}},
					section.Rows,
				)
			},
		},
		{
			name:  "when client ip empty shows placeholder",
			lines: []string{`{"timestamp":"t","server_observed_ip":"203.0.113.5","client_reported_ip":""}`},
			validateFunc: func(section cli.Section) {
				s.Equal("-", section.Rows[0][2])
			},
		},
		{
			name:  "when line is not JSON keeps it verbatim",
			lines: []string{"2026-10-19 08:30:15 legacy line"},
			validateFunc: func(section cli.Section) {
				s.Equal("?", section.Rows[0][0])
				s.Equal("2026-10-19 08:30:15 legacy line", section.Rows[0][3])
			},
		},
		{
			name:  "when no lines returns empty rows",
			lines: nil,
			validateFunc: func(section cli.Section) {
				s.Empty(section.Rows)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.validateFunc(cli.BuildRecordSection("Reports", tc.lines))
		})
	}
}

func (s *UIPublicTestSuite) TestPrintCompactTable() {
	tests := []struct {
		name         string
		sections     []cli.Section
		validateFunc func(output string)
	}{
		{
			name: "when rows present renders title headers and cells",
			sections: []cli.Section{
				{
					Title:   "Reports",
					Headers: []string{"server ip", "client ip"},
					Rows:    [][]string{{"203.0.113.5", "8.8.8.8"}},
				},
			},
			validateFunc: func(output string) {
				s.Contains(output, "Reports")
				s.Contains(output, "SERVER IP")
				s.Contains(output, "203.0.113.5")
				s.Contains(output, "8.8.8.8")
			},
		},
		{
			name: "when cell exceeds max width truncates with ellipsis",
			sections: []cli.Section{
				{
					Headers: []string{"agent", "ip"},
					Rows: [][]string{{
						"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko)",
						"1.1.1.1",
					}},
				},
			},
			validateFunc: func(output string) {
				s.Contains(output, "…")
				s.NotContains(output, "like Gecko)")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var buf bytes.Buffer
			cli.PrintCompactTable(&buf, tc.sections)
			tc.validateFunc(buf.String())
		})
	}
}

func (s *UIPublicTestSuite) TestPrintKV() {
	tests := []struct {
		name         string
		pairs        []string
		validateFunc func(output string)
	}{
		{
			name:  "when pairs provided prints labels and values",
			pairs: []string{"Lines", "3", "File", "hits.log"},
			validateFunc: func(output string) {
				s.Contains(output, "Lines:")
				s.Contains(output, "hits.log")
			},
		},
		{
			name:  "when odd number of args prints nothing",
			pairs: []string{"Lines"},
			validateFunc: func(output string) {
				s.Empty(output)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var buf bytes.Buffer
			cli.PrintKV(&buf, tc.pairs...)
			tc.validateFunc(buf.String())
		})
	}
}

func TestUIPublicTestSuite(t *testing.T) {
	suite.Run(t, new(UIPublicTestSuite))
}
