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
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/cli"
)

type LifecyclePublicTestSuite struct {
	suite.Suite
}

func TestLifecyclePublicTestSuite(t *testing.T) {
	suite.Run(t, new(LifecyclePublicTestSuite))
}

type fakeServer struct {
	stopped bool
	order   *[]string
}

func (f *fakeServer) Start() {}

func (f *fakeServer) Stop(_ context.Context) {
	f.stopped = true
	*f.order = append(*f.order, "server")
}

func (s *LifecyclePublicTestSuite) TestRunServer() {
	tests := []struct {
		name         string
		hookErrs     []error
		validateFunc func(order []string, logs string)
	}{
		{
			name: "stops server without hooks",
			validateFunc: func(order []string, logs string) {
				s.Equal([]string{"server"}, order)
				s.Contains(logs, "shutting down")
			},
		},
		{
			name:     "runs hooks after the server in order",
			hookErrs: []error{nil, nil},
			validateFunc: func(order []string, _ string) {
				s.Equal([]string{"server", "hook-0", "hook-1"}, order)
			},
		},
		{
			name:     "failing hook does not stop later hooks",
			hookErrs: []error{errors.New("exporter unreachable"), nil},
			validateFunc: func(order []string, logs string) {
				s.Equal([]string{"server", "hook-0", "hook-1"}, order)
				s.Contains(logs, "shutdown hook failed")
				s.Contains(logs, "exporter unreachable")
				s.Contains(logs, "hook=hook-0")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))

			order := []string{}
			server := &fakeServer{order: &order}

			hooks := make([]cli.ShutdownHook, 0, len(tt.hookErrs))
			for i, hookErr := range tt.hookErrs {
				name := "hook-" + string(rune('0'+i))
				hooks = append(hooks, cli.ShutdownHook{
					Name: name,
					Fn: func(ctx context.Context) error {
						s.NoError(ctx.Err())
						order = append(order, name)
						return hookErr
					},
				})
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			cli.RunServer(ctx, logger, server, hooks...)

			s.True(server.stopped)
			tt.validateFunc(order, buf.String())
		})
	}
}
