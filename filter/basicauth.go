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
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"junction.dev/junction"
)

// basicAuthConfig holds the configuration for the basic auth filter.
type basicAuthConfig struct {
	realm string
}

// BasicAuthOption configures the basic auth filter.
type BasicAuthOption func(*basicAuthConfig)

// WithRealm sets the authentication realm reported in the challenge.
// Defaults to "Restricted".
func WithRealm(realm string) BasicAuthOption {
	return func(c *basicAuthConfig) {
		c.realm = realm
	}
}

// dummyPassword keeps the unknown-user branch doing the same comparison
// work as the known-user branch.
var dummyPassword = []byte("xxxxxxxxxxxxxxxx")

// Users builds a credential validator from a static username→password map
// using constant-time comparison. Suitable for small internal tools; real
// deployments should validate against a credential store.
func Users(creds map[string]string) func(user, pass string) bool {
	return func(user, pass string) bool {
		expected, ok := creds[user]
		if !ok {
			subtle.ConstantTimeCompare([]byte(pass), dummyPassword)
			return false
		}
		return subtle.ConstantTimeCompare([]byte(pass), []byte(expected)) == 1
	}
}

// BasicAuth returns a filter enforcing RFC 7617 basic authentication.
// Requests failing validation receive 401 with a WWW-Authenticate
// challenge and never reach the wrapped handler.
//
//	protected := adminRoutes.WithFilter(filter.BasicAuth(
//	    filter.Users(map[string]string{"ops": secret}),
//	    filter.WithRealm("admin"),
//	))
func BasicAuth(validate func(user, pass string) bool, opts ...BasicAuthOption) junction.Filter {
	cfg := &basicAuthConfig{realm: "Restricted"}
	for _, opt := range opts {
		opt(cfg)
	}
	challenge := `Basic realm="` + cfg.realm + `"`

	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) junction.Response {
			user, pass, ok := decodeBasicAuth(req.Header("Authorization"))
			if !ok || !validate(user, pass) {
				return junction.NewResponse(http.StatusUnauthorized).
					WithHeader("WWW-Authenticate", challenge)
			}
			return next(req)
		}
	}
}

// decodeBasicAuth parses an Authorization header value into credentials.
func decodeBasicAuth(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	user, pass, ok = strings.Cut(string(decoded), ":")
	return user, pass, ok
}
