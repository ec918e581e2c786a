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
	"net/http"
	"runtime/debug"

	"junction.dev/junction"
)

// recoveryConfig holds the configuration for the recovery filter.
type recoveryConfig struct {
	logger *slog.Logger
}

// RecoverOption configures the recovery filter.
type RecoverOption func(*recoveryConfig)

// WithRecoverLogger sets the logger used to report recovered panics.
// Defaults to slog.Default().
func WithRecoverLogger(logger *slog.Logger) RecoverOption {
	return func(c *recoveryConfig) {
		c.logger = logger
	}
}

// Recover returns a filter that converts handler panics into 500 responses,
// logging the panic value and stack trace instead of crashing the caller.
// Place it outermost so it also covers other filters.
func Recover(opts ...RecoverOption) junction.Filter {
	cfg := &recoveryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) (resp junction.Response) {
			defer func() {
				if p := recover(); p != nil {
					logger := cfg.logger
					if logger == nil {
						logger = slog.Default()
					}
					logger.Error("panic recovered",
						slog.Any("panic", p),
						slog.String("method", req.Method().String()),
						slog.String("path", req.Path()),
						slog.String("stack", string(debug.Stack())),
					)
					resp = junction.NewResponse(http.StatusInternalServerError)
				}
			}()
			return next(req)
		}
	}
}
