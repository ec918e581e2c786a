// Copyright 2025 The Junction Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filter

import (
	"log/slog"
	"time"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

// accessLogConfig holds the configuration for the access log filter.
type accessLogConfig struct {
	logger        *slog.Logger
	excludePaths  map[string]bool
	slowThreshold time.Duration
}

// AccessLogOption configures the access log filter.
type AccessLogOption func(*accessLogConfig)

// WithLogger sets the slog logger used for access entries.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) AccessLogOption {
	return func(c *accessLogConfig) {
		c.logger = logger
	}
}

// WithExcludePaths suppresses logging for exact request paths, typically
// health checks and metrics endpoints.
func WithExcludePaths(paths ...string) AccessLogOption {
	return func(c *accessLogConfig) {
		for _, p := range paths {
			c.excludePaths[p] = true
		}
	}
}

// WithSlowThreshold logs requests slower than d at warn level.
// Zero disables slow-request detection.
func WithSlowThreshold(d time.Duration) AccessLogOption {
	return func(c *accessLogConfig) {
		c.slowThreshold = d
	}
}

// AccessLog returns a filter that writes one structured log entry per
// request: method, path, status, duration, response size, and the matched
// route template (the low-cardinality label; "_unmatched" for 404s that
// never hit a route).
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	app := routes.WithFilter(filter.AccessLog(
//	    filter.WithLogger(logger),
//	    filter.WithExcludePaths("/health"),
//	    filter.WithSlowThreshold(500*time.Millisecond),
//	))
func AccessLog(opts ...AccessLogOption) junction.Filter {
	cfg := &accessLogConfig{excludePaths: map[string]bool{}}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) junction.Response {
			if cfg.excludePaths[req.Path()] {
				return next(req)
			}

			start := time.Now()
			resp := next(req)
			elapsed := time.Since(start)

			logger := cfg.logger
			if logger == nil {
				logger = slog.Default()
			}

			attrs := []any{
				slog.String("method", req.Method().String()),
				slog.String("path", req.Path()),
				slog.String("route", routing.ResponseTemplate(resp, "_unmatched")),
				slog.Int("status", resp.Status()),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
				slog.Int("size", len(resp.Body())),
			}

			if cfg.slowThreshold > 0 && elapsed > cfg.slowThreshold {
				logger.Warn("slow request", attrs...)
			} else {
				logger.Info("request", attrs...)
			}
			return resp
		}
	}
}
