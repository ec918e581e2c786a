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

package routing

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"junction.dev/junction"
	"junction.dev/junction/uritemplate"
)

// StaticOption configures a static file router.
type StaticOption func(*staticRouter)

// WithContentType overrides the content type served for a file extension.
// Overrides win over the system MIME registry and are held per instance;
// the global registry is never mutated.
//
//	routing.Static("/assets", routing.Dir("./public"),
//	    routing.WithContentType(".wasm", "application/wasm"),
//	)
func WithContentType(ext, contentType string) StaticOption {
	return func(s *staticRouter) {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.types[ext] = contentType
	}
}

// Static creates a router serving resources from loader under basePath.
//
// The base path is a literal string prefix, not a template. Resolution
// strips it from the request path, substitutes "index.html" for a blank
// remainder, and strips a single leading slash; the result is handed to the
// loader. Bodies are read eagerly and fully buffered — no streaming.
//
// Only GET is served. Via Match, any other method (or an unresolvable
// resource) is a plain non-match so that later routers in a chain get their
// turn; via Handler, dispatch always produces a response, with 404 for
// anything it cannot serve. A file whose extension resolves to no known
// content type (or only to application/octet-stream) is treated as
// unservable and answers 404 even when the resource exists.
func Static(basePath string, loader ResourceLoader, opts ...StaticOption) Router {
	s := &staticRouter{
		basePath: normalizeBasePath(basePath),
		loader:   loader,
		types:    map[string]string{},
		filter:   junction.NoopFilter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// staticRouter is immutable after Static returns; rebuild ops copy.
type staticRouter struct {
	basePath string // normalized: "" for root, else "/prefix" without trailing slash
	loader   ResourceLoader
	types    map[string]string
	filter   junction.Filter
}

// Match serves GET requests it can fully resolve. It evaluates the filtered
// dispatch once and captures the response, so a matched static handler does
// not hit the loader twice.
func (s *staticRouter) Match(req junction.Request) (junction.Handler, bool) {
	if req.Method() != junction.GET {
		return nil, false
	}
	resp := s.filter.ThenHandler(s.serve)(req)
	if resp.Status() == http.StatusNotFound {
		return nil, false
	}
	return func(junction.Request) junction.Response { return resp }, true
}

// Handler serves any request, answering 404 for everything it cannot
// resolve. The attached filter wraps dispatch unconditionally.
func (s *staticRouter) Handler() junction.Handler {
	return s.filter.ThenHandler(s.serve)
}

// WithBasePath returns a copy mounted under prefix + existing base path.
func (s *staticRouter) WithBasePath(prefix string) Router {
	c := *s
	c.basePath = normalizeBasePath(prefix) + s.basePath
	return &c
}

// WithFilter returns a copy with f composed inside the existing filter.
func (s *staticRouter) WithFilter(f junction.Filter) Router {
	c := *s
	c.filter = s.filter.Then(f)
	return &c
}

func (s *staticRouter) serve(req junction.Request) junction.Response {
	if req.Method() != junction.GET {
		return notFound()
	}

	rest, ok := strings.CutPrefix(req.Path(), s.basePath)
	if !ok || (rest != "" && rest[0] != '/') {
		return notFound()
	}
	if rest == "" || rest == "/" {
		rest = "/index.html"
	}
	rest = strings.TrimPrefix(rest, "/")

	contentType := s.contentType(path.Ext(rest))
	if contentType == "" {
		return notFound()
	}

	rc, ok := s.loader.Load(rest)
	if !ok {
		return notFound()
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		// Read failures fold into 404, same as absence.
		return notFound()
	}

	return junction.NewResponse(http.StatusOK).
		WithHeader("Content-Type", contentType).
		WithBody(body)
}

// contentType resolves an extension against the per-instance overrides
// first, then the system MIME registry. The generic binary fallback counts
// as unrecognized: unknown file types are never served as raw bytes.
func (s *staticRouter) contentType(ext string) string {
	if ct, ok := s.types[ext]; ok {
		return ct
	}
	ct := mime.TypeByExtension(ext)
	if ct == "" || strings.HasPrefix(ct, "application/octet-stream") {
		return ""
	}
	return ct
}

// normalizeBasePath reduces a literal mount prefix to "" (root) or
// "/prefix" with no trailing slash.
func normalizeBasePath(p string) string {
	joined := uritemplate.Join("/", p)
	if joined == "/" {
		return ""
	}
	return joined
}
