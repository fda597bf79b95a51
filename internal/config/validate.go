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

package config

import (
	"errors"

	"github.com/retr0h/ipreport/internal/validation"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultPort       = 5000
	DefaultLogFile    = "hits.log"
	DefaultAdminToken = "changeme"
	DefaultBodyLimit  = "64K"
)

// Validate checks the struct tags of c.
func Validate(
	c *Config,
) error {
	if msg, ok := validation.Struct(c); !ok {
		return errors.New(msg)
	}

	return nil
}

// UsesDefaultToken reports whether the admin token was left at its
// placeholder value.
func (c *Config) UsesDefaultToken() bool {
	return c.Security.AdminToken == DefaultAdminToken
}
