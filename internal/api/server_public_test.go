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

package api_test

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/api"
	"github.com/retr0h/ipreport/internal/config"
)

type ServerPublicTestSuite struct {
	suite.Suite
}

func (s *ServerPublicTestSuite) TestNew() {
	tests := []struct {
		name      string
		appConfig config.Config
	}{
		{
			name:      "creates server with default config",
			appConfig: config.Config{},
		},
		{
			name: "creates server with CORS origins",
			appConfig: config.Config{
				Security: config.Security{
					CORS: config.CORS{
						AllowOrigins: []string{
							"http://localhost:3000",
							"https://example.com",
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			server := api.New(tt.appConfig, slog.Default())

			s.NotNil(server)
			s.NotNil(server.Echo)
		})
	}
}

func (s *ServerPublicTestSuite) TestRealIP() {
	tests := []struct {
		name       string
		trustProxy bool
		opts       []api.Option
		want       string
	}{
		{
			name:       "trusted proxy uses forwarded header",
			trustProxy: true,
			want:       "203.0.113.7",
		},
		{
			name:       "untrusted proxy uses peer address",
			trustProxy: false,
			want:       "10.0.0.1",
		},
		{
			name:       "option overrides extractor",
			trustProxy: true,
			opts:       []api.Option{api.WithIPExtractor(echo.ExtractIPDirect())},
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			appConfig := config.Config{
				Security: config.Security{TrustProxy: tt.trustProxy},
			}
			server := api.New(appConfig, slog.Default(), tt.opts...)
			server.Echo.GET("/ip", func(c echo.Context) error {
				return c.String(http.StatusOK, c.RealIP())
			})

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.RemoteAddr = "10.0.0.1:4000"
			req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
			rec := httptest.NewRecorder()
			server.Echo.ServeHTTP(rec, req)

			s.Equal(tt.want, rec.Body.String())
		})
	}
}

func (s *ServerPublicTestSuite) TestMiddleware() {
	tests := []struct {
		name         string
		appConfig    config.Config
		body         string
		wantCode     int
		validateFunc func(rec *httptest.ResponseRecorder)
	}{
		{
			name:      "sets request id header",
			appConfig: config.Config{},
			body:      "{}",
			wantCode:  http.StatusOK,
			validateFunc: func(rec *httptest.ResponseRecorder) {
				s.Len(rec.Header().Get(echo.HeaderXRequestID), 36)
			},
		},
		{
			name: "rejects oversized bodies",
			appConfig: config.Config{
				Server: config.Server{BodyLimit: "1K"},
			},
			body:         strings.Repeat("a", 2048),
			wantCode:     http.StatusRequestEntityTooLarge,
			validateFunc: func(_ *httptest.ResponseRecorder) {},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			server := api.New(tt.appConfig, slog.Default())
			server.Echo.POST("/echo", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			server.Echo.ServeHTTP(rec, req)

			s.Equal(tt.wantCode, rec.Code)
			tt.validateFunc(rec)
		})
	}
}

func (s *ServerPublicTestSuite) TestStartAndStop() {
	tests := []struct {
		name string
	}{
		{
			name: "starts and stops gracefully",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			appConfig := config.Config{
				Server: config.Server{Port: 0},
			}

			server := api.New(appConfig, slog.Default())
			server.Start()

			time.Sleep(50 * time.Millisecond)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			server.Stop(ctx)
		})
	}
}

func (s *ServerPublicTestSuite) TestStartErrorPath() {
	tests := []struct {
		name string
	}{
		{
			name: "logs error when port already in use",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ln, err := net.Listen("tcp", ":0")
			s.Require().NoError(err)
			defer func() { _ = ln.Close() }()

			port := ln.Addr().(*net.TCPAddr).Port

			appConfig := config.Config{
				Server: config.Server{Port: port},
			}

			server := api.New(appConfig, slog.Default())
			server.Start()

			time.Sleep(100 * time.Millisecond)
		})
	}
}

func (s *ServerPublicTestSuite) TestStopErrorPath() {
	tests := []struct {
		name string
	}{
		{
			name: "logs error when shutdown context expired with active connections",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ln, err := net.Listen("tcp", ":0")
			s.Require().NoError(err)
			port := ln.Addr().(*net.TCPAddr).Port
			_ = ln.Close()

			appConfig := config.Config{
				Server: config.Server{Port: port},
			}

			server := api.New(appConfig, slog.Default())

			server.Echo.GET("/slow", func(c echo.Context) error {
				time.Sleep(10 * time.Second)
				return c.String(http.StatusOK, "done")
			})

			server.Start()
			time.Sleep(50 * time.Millisecond)

			go http.Get(fmt.Sprintf("http://localhost:%d/slow", port)) //nolint:errcheck
			time.Sleep(50 * time.Millisecond)

			ctx, cancel := context.WithDeadline(
				context.Background(),
				time.Now().Add(-time.Second),
			)
			defer cancel()

			server.Stop(ctx)
		})
	}
}

func TestServerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ServerPublicTestSuite))
}
