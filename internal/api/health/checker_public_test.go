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

package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/api/health"
)

type CheckerPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *CheckerPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CheckerPublicTestSuite) TestCheckHealth() {
	tests := []struct {
		name      string
		checker   *health.StoreChecker
		expectErr bool
		errMsg    string
	}{
		{
			name: "store check passes",
			checker: &health.StoreChecker{
				StoreCheck: func(context.Context) error { return nil },
			},
			expectErr: false,
		},
		{
			name: "store check fails",
			checker: &health.StoreChecker{
				StoreCheck: func(context.Context) error { return errors.New("log directory missing") },
			},
			expectErr: true,
			errMsg:    "log directory missing",
		},
		{
			name:      "nil check passes",
			checker:   &health.StoreChecker{},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.checker.CheckHealth(s.ctx)

			if tt.expectErr {
				s.Error(err)
				s.Contains(err.Error(), tt.errMsg)
			} else {
				s.NoError(err)
			}
		})
	}
}

func TestCheckerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(CheckerPublicTestSuite))
}
