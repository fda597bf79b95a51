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

// Package clientip derives the "server observed" client address of a
// request from its proxy headers and connection peer.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// HeaderXForwardedFor is the proxy chain header consulted by FromRequest.
const HeaderXForwardedFor = "X-Forwarded-For"

// mappedPrefix is the textual prefix of an IPv4-mapped IPv6 address.
const mappedPrefix = "::ffff:"

// Normalize reduces an address candidate to a single address. A comma
// separated chain collapses to its left-most entry and an IPv4-mapped IPv6
// literal is unwrapped to the trailing IPv4 part. Empty or malformed input
// is returned as-is; validation is left to the caller.
func Normalize(
	ip string,
) string {
	if ip == "" {
		return ip
	}

	if strings.Contains(ip, ",") {
		ip = leftmost(ip)
	}

	if strings.HasPrefix(ip, mappedPrefix) {
		ip = ip[strings.LastIndex(ip, mappedPrefix)+len(mappedPrefix):]
	}

	return ip
}

// ExtractServerIP picks the client address from an X-Forwarded-For value,
// falling back to the connection peer when the header is absent or empty.
//
// Only the left-most chain entry is trusted. This assumes the fronting
// reverse proxy strips or rewrites client supplied X-Forwarded-For headers;
// without such a proxy the value is spoofable by the client.
func ExtractServerIP(
	forwardedFor string,
	peer string,
) string {
	candidate := peer
	if forwardedFor != "" {
		candidate = leftmost(forwardedFor)
	}

	return Normalize(candidate)
}

// PeerAddress strips the port from a Go style RemoteAddr ("host:port" or
// "[v6]:port"). Values without a port are returned unchanged.
func PeerAddress(
	remoteAddr string,
) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}

// FromRequest returns the server observed client address for r.
func FromRequest(
	r *http.Request,
) string {
	return ExtractServerIP(
		r.Header.Get(HeaderXForwardedFor),
		PeerAddress(r.RemoteAddr),
	)
}

func leftmost(
	chain string,
) string {
	first, _, _ := strings.Cut(chain, ",")

	return strings.TrimSpace(first)
}
