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
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/api"
	"github.com/retr0h/ipreport/internal/config"
)

type ServerHelpersTestSuite struct {
	suite.Suite

	savedFs     afero.Fs
	savedConfig config.Config
}

func (s *ServerHelpersTestSuite) SetupTest() {
	s.savedFs = appFs
	s.savedConfig = appConfig

	appFs = afero.NewMemMapFs()
	s.Require().NoError(appFs.MkdirAll("/data", 0o755))
	appConfig = config.Config{
		Report: config.Report{
			LogFile:        "/data/hits.log",
			IncludeHeaders: false,
		},
		Security: config.Security{
			AdminToken: "s3cret",
		},
	}
}

func (s *ServerHelpersTestSuite) TearDownTest() {
	appFs = s.savedFs
	appConfig = s.savedConfig
}

func (s *ServerHelpersTestSuite) TestSetupServer() {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	sm := setupServer(slog.Default(), metrics, "/metrics", "1.0.0")
	server, ok := sm.(*api.Server)
	s.Require().True(ok)

	req := httptest.NewRequest(
		http.MethodPost,
		"/report",
		strings.NewReader(`{"client_reported_ip":"198.51.100.4"}`),
	)
	rec := httptest.NewRecorder()
	server.Echo.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	data, err := afero.ReadFile(appFs, "/data/hits.log")
	s.Require().NoError(err)
	s.Contains(string(data), `"client_reported_ip":"198.51.100.4"`)
	s.NotContains(string(data), `"headers"`)

	for _, path := range []string{"/", "/logs?token=s3cret", "/health", "/health/ready", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.Echo.ServeHTTP(rec, req)
		s.Equal(http.StatusOK, rec.Code, path)
	}
}

func (s *ServerHelpersTestSuite) TestWarnInsecureToken() {
	tests := []struct {
		name     string
		token    string
		wantWarn string
	}{
		{
			name:     "default token",
			token:    config.DefaultAdminToken,
			wantWarn: "built-in default",
		},
		{
			name:     "empty token",
			token:    "",
			wantWarn: "rejects every request",
		},
		{
			name:     "custom token",
			token:    "s3cret",
			wantWarn: "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			appConfig.Security.AdminToken = tt.token

			var buf bytes.Buffer
			warnInsecureToken(slog.New(slog.NewTextHandler(&buf, nil)))

			if tt.wantWarn == "" {
				s.Empty(buf.String())
			} else {
				s.Contains(buf.String(), tt.wantWarn)
			}
		})
	}
}

func TestServerHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(ServerHelpersTestSuite))
}
