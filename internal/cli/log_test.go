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
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (s *LogTestSuite) TestLogFatal() {
	tests := []struct {
		name         string
		msg          string
		err          error
		kvPairs      []any
		validateFunc func(record map[string]any)
	}{
		{
			name: "logs error under the error key",
			msg:  "failed to read report log",
			err:  fmt.Errorf("open hits.log: %w", fmt.Errorf("permission denied")),
			validateFunc: func(record map[string]any) {
				s.Equal("ERROR", record["level"])
				s.Equal("failed to read report log", record["msg"])
				s.Equal("open hits.log: permission denied", record["error"])
			},
		},
		{
			name: "omits error key when err is nil",
			msg:  "invalid --lines",
			validateFunc: func(record map[string]any) {
				s.NotContains(record, "error")
			},
		},
		{
			name:    "keeps extra pairs",
			msg:     "failed to read config",
			err:     fmt.Errorf("yaml: line 3"),
			kvPairs: []any{"configFile", "/etc/ipreport.yaml"},
			validateFunc: func(record map[string]any) {
				s.Equal("yaml: line 3", record["error"])
				s.Equal("/etc/ipreport.yaml", record["configFile"])
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			exitCode := -1
			originalExit := osExit
			osExit = func(code int) { exitCode = code }
			defer func() { osExit = originalExit }()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			LogFatal(logger, tt.msg, tt.err, tt.kvPairs...)

			s.Equal(1, exitCode)

			var record map[string]any
			s.Require().NoError(json.Unmarshal(buf.Bytes(), &record))
			tt.validateFunc(record)
		})
	}
}
