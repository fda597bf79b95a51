//go:build integration

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

package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HealthSmokeSuite struct {
	suite.Suite
}

func (s *HealthSmokeSuite) TestProbes() {
	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "liveness",
			path:     "/health",
			wantCode: http.StatusOK,
			wantBody: `"ok"`,
		},
		{
			name:     "readiness",
			path:     "/health/ready",
			wantCode: http.StatusOK,
			wantBody: `"ready"`,
		},
		{
			name:     "metrics",
			path:     "/metrics",
			wantCode: http.StatusOK,
			wantBody: "go_goroutines",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			code, body, err := doRequest(http.MethodGet, tt.path, "", nil)
			s.Require().NoError(err)

			s.Equal(tt.wantCode, code)
			s.Contains(body, tt.wantBody)
		})
	}
}

func TestHealthSmokeSuite(t *testing.T) {
	suite.Run(t, new(HealthSmokeSuite))
}
