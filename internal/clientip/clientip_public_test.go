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

package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/ipreport/internal/clientip"
)

type ClientIPPublicTestSuite struct {
	suite.Suite
}

func (s *ClientIPPublicTestSuite) TestNormalize() {
	tests := []struct {
		name string
		ip   string
		want string
	}{
		{
			name: "when empty returns empty",
			ip:   "",
			want: "",
		},
		{
			name: "when plain IPv4 returns unchanged",
			ip:   "8.8.8.8",
			want: "8.8.8.8",
		},
		{
			name: "when IPv4-mapped IPv6 unwraps to IPv4",
			ip:   "::ffff:192.168.1.10",
			want: "192.168.1.10",
		},
		{
			name: "when chain takes left-most entry",
			ip:   "203.0.113.5 , 10.0.0.1",
			want: "203.0.113.5",
		},
		{
			name: "when chain of mapped addresses unwraps left-most",
			ip:   "::ffff:203.0.113.5,::ffff:10.0.0.1",
			want: "203.0.113.5",
		},
		{
			name: "when regular IPv6 returns unchanged",
			ip:   "2001:db8::1",
			want: "2001:db8::1",
		},
		{
			name: "when malformed returns unchanged",
			ip:   "not-an-ip",
			want: "not-an-ip",
		},
		{
			name: "when chain starts with empty entry returns empty",
			ip:   " ,10.0.0.1",
			want: "",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, clientip.Normalize(tc.ip))
		})
	}
}

func (s *ClientIPPublicTestSuite) TestExtractServerIP() {
	tests := []struct {
		name         string
		forwardedFor string
		peer         string
		want         string
	}{
		{
			name:         "when header and peer empty returns empty",
			forwardedFor: "",
			peer:         "",
			want:         "",
		},
		{
			name:         "when header has chain takes left-most",
			forwardedFor: "203.0.113.5, 10.0.0.1",
			peer:         "10.0.0.2",
			want:         "203.0.113.5",
		},
		{
			name:         "when header has single entry with spaces trims it",
			forwardedFor: "  198.51.100.7  ",
			peer:         "10.0.0.2",
			want:         "198.51.100.7",
		},
		{
			name:         "when header absent falls back to peer",
			forwardedFor: "",
			peer:         "192.0.2.44",
			want:         "192.0.2.44",
		},
		{
			name:         "when peer is IPv4-mapped unwraps it",
			forwardedFor: "",
			peer:         "::ffff:127.0.0.1",
			want:         "127.0.0.1",
		},
		{
			name:         "when header is IPv4-mapped unwraps it",
			forwardedFor: "::ffff:203.0.113.9, 10.0.0.1",
			peer:         "10.0.0.2",
			want:         "203.0.113.9",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, clientip.ExtractServerIP(tc.forwardedFor, tc.peer))
		})
	}
}

func (s *ClientIPPublicTestSuite) TestPeerAddress() {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{
			name:       "when IPv4 with port strips port",
			remoteAddr: "192.0.2.1:54321",
			want:       "192.0.2.1",
		},
		{
			name:       "when bracketed IPv6 with port strips port and brackets",
			remoteAddr: "[::ffff:192.0.2.1]:54321",
			want:       "::ffff:192.0.2.1",
		},
		{
			name:       "when no port returns unchanged",
			remoteAddr: "192.0.2.1",
			want:       "192.0.2.1",
		},
		{
			name:       "when empty returns empty",
			remoteAddr: "",
			want:       "",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, clientip.PeerAddress(tc.remoteAddr))
		})
	}
}

func (s *ClientIPPublicTestSuite) TestFromRequest() {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		want         string
	}{
		{
			name:         "when forwarded header present uses it",
			remoteAddr:   "10.0.0.2:1234",
			forwardedFor: "203.0.113.5, 10.0.0.1",
			want:         "203.0.113.5",
		},
		{
			name:       "when forwarded header absent uses unwrapped peer",
			remoteAddr: "[::ffff:198.51.100.1]:1234",
			want:       "198.51.100.1",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodPost, "/report", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwardedFor != "" {
				req.Header.Set(clientip.HeaderXForwardedFor, tc.forwardedFor)
			}

			s.Equal(tc.want, clientip.FromRequest(req))
		})
	}
}

func TestClientIPPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ClientIPPublicTestSuite))
}
