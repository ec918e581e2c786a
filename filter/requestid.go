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
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"junction.dev/junction"
)

// requestIDConfig holds the configuration for the request ID filter.
type requestIDConfig struct {
	headerName    string
	generator     func() string
	allowClientID bool
}

// RequestIDOption configures the request ID filter.
type RequestIDOption func(*requestIDConfig)

// WithIDHeader sets the header carrying the request ID.
// Defaults to "X-Request-ID".
func WithIDHeader(name string) RequestIDOption {
	return func(c *requestIDConfig) {
		c.headerName = name
	}
}

// WithULID switches ID generation to ULIDs: time-ordered, sortable, and a
// compact 26 characters.
func WithULID() RequestIDOption {
	return func(c *requestIDConfig) {
		c.generator = generateULID
	}
}

// WithGenerator sets a custom ID generator.
func WithGenerator(gen func() string) RequestIDOption {
	return func(c *requestIDConfig) {
		c.generator = gen
	}
}

// WithoutClientID ignores request IDs supplied by clients and always
// generates a fresh one. By default a client-provided ID is trusted and
// propagated.
func WithoutClientID() RequestIDOption {
	return func(c *requestIDConfig) {
		c.allowClientID = false
	}
}

// generateUUIDv7 generates a UUID v7 string. UUID v7 is time-ordered and
// lexicographically sortable (RFC 9562).
func generateUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ulidEntropy provides monotonic ordering within the same millisecond.
var (
	ulidEntropy     = ulid.Monotonic(rand.Reader, 0)
	ulidEntropyLock sync.Mutex
)

func generateULID() string {
	ulidEntropyLock.Lock()
	defer ulidEntropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// RequestID returns a filter that attaches a unique ID to each request and
// echoes it on the response, for log correlation across services.
//
// The filter reuses a client-provided ID when present (unless
// WithoutClientID), otherwise generates one — UUID v7 by default,
// ULID via WithULID.
func RequestID(opts ...RequestIDOption) junction.Filter {
	cfg := &requestIDConfig{
		headerName:    "X-Request-ID",
		generator:     generateUUIDv7,
		allowClientID: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) junction.Response {
			id := ""
			if cfg.allowClientID {
				id = req.Header(cfg.headerName)
			}
			if id == "" {
				id = cfg.generator()
			}

			resp := next(req.WithReplacedHeader(cfg.headerName, id))
			return resp.WithReplacedHeader(cfg.headerName, id)
		}
	}
}
