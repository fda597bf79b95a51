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

package report

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/retr0h/ipreport/internal/logstore"
)

// Tail limits for the admin log view.
const (
	DefaultTailLines = 200
	MaxTailLines     = 10000
)

// Viewer exposes the tail of the report log to holders of the admin token.
type Viewer struct {
	store logstore.Store
	token string
}

// NewViewer creates a Viewer guarded by token. An empty token denies every
// request.
func NewViewer(
	store logstore.Store,
	token string,
) *Viewer {
	return &Viewer{
		store: store,
		token: token,
	}
}

// Authorized reports whether token matches the configured admin token.
func (v *Viewer) Authorized(
	token string,
) bool {
	if v.token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) == 1
}

// Tail returns the last lines of the log. A nil slice with a nil error
// means the log does not exist yet. lines outside 1..MaxTailLines fall
// back to DefaultTailLines or are clamped.
func (v *Viewer) Tail(
	ctx context.Context,
	token string,
	lines int,
) ([]string, error) {
	if !v.Authorized(token) {
		return nil, ErrForbidden
	}

	switch {
	case lines <= 0:
		lines = DefaultTailLines
	case lines > MaxTailLines:
		lines = MaxTailLines
	}

	out, err := v.store.Tail(ctx, lines)
	if err != nil {
		if errors.Is(err, logstore.ErrNotInitialized) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading log tail: %w", err)
	}

	return out, nil
}
