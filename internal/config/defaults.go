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
	"fmt"
	"strings"

	masker "github.com/ggwhite/go-masker/v2"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the plain environment variables that
// deployments already set. Every key is also reachable as IPREPORT_<KEY>.
var envBindings = map[string]string{
	"server.port":          "PORT",
	"report.log_file":      "HITS_LOG",
	"security.admin_token": "ADMIN_TOKEN",
	"security.trust_proxy": "TRUST_PROXY",
}

// SetDefaults registers the default value of every config key on v.
func SetDefaults(
	v *viper.Viper,
) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.body_limit", DefaultBodyLimit)
	v.SetDefault("report.log_file", DefaultLogFile)
	v.SetDefault("report.include_headers", true)
	v.SetDefault("security.admin_token", DefaultAdminToken)
	v.SetDefault("security.trust_proxy", true)
	v.SetDefault("security.cors.allow_origins", []string{})
	v.SetDefault("telemetry.tracing.enabled", false)
	v.SetDefault("telemetry.tracing.exporter", "")
	v.SetDefault("telemetry.tracing.otlp_endpoint", "")
	v.SetDefault("telemetry.metrics.path", "/metrics")
	v.SetDefault("debug", false)
}

// BindEnv binds the plain environment variables to their config keys. The
// prefixed variable still wins when both are set.
func BindEnv(
	v *viper.Viper,
) error {
	for key, env := range envBindings {
		names := []string{key}
		if prefix := v.GetEnvPrefix(); prefix != "" {
			names = append(names, envName(prefix, key))
		}
		names = append(names, env)

		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}

	return nil
}

func envName(
	prefix string,
	key string,
) string {
	return strings.ToUpper(prefix + "_" + strings.ReplaceAll(key, ".", "_"))
}

// Masked returns a copy of c with secrets replaced, suitable for logging.
func Masked(
	c Config,
) (any, error) {
	return masker.NewMaskerMarshaler().Struct(&c)
}
