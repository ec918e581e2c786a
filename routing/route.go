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
	"junction.dev/junction"
	"junction.dev/junction/uritemplate"
)

// route is the leaf Router: a (template, method, handler) triple with
// exact-match semantics. Immutable after construction.
type route struct {
	template *uritemplate.Template
	method   junction.Method
	handler  junction.Handler
	filter   junction.Filter
}

// NewRoute binds a handler to a method and a path pattern.
//
// The route matches when the template matches the request path structurally
// (e.g. "/users/{id}" matches "/users/42") and the method is exactly equal.
// A path match with the wrong method is a plain non-match — not a 405 — so
// the search continues to later routers.
func NewRoute(method junction.Method, pattern string, h junction.Handler) Router {
	return route{
		template: uritemplate.New(pattern),
		method:   method,
		handler:  h,
		filter:   junction.NoopFilter(),
	}
}

// GET binds a handler to GET requests on pattern.
func GET(pattern string, h junction.Handler) Router {
	return NewRoute(junction.GET, pattern, h)
}

// POST binds a handler to POST requests on pattern.
func POST(pattern string, h junction.Handler) Router {
	return NewRoute(junction.POST, pattern, h)
}

// PUT binds a handler to PUT requests on pattern.
func PUT(pattern string, h junction.Handler) Router {
	return NewRoute(junction.PUT, pattern, h)
}

// DELETE binds a handler to DELETE requests on pattern.
func DELETE(pattern string, h junction.Handler) Router {
	return NewRoute(junction.DELETE, pattern, h)
}

// PATCH binds a handler to PATCH requests on pattern.
func PATCH(pattern string, h junction.Handler) Router {
	return NewRoute(junction.PATCH, pattern, h)
}

// HEAD binds a handler to HEAD requests on pattern.
func HEAD(pattern string, h junction.Handler) Router {
	return NewRoute(junction.HEAD, pattern, h)
}

// OPTIONS binds a handler to OPTIONS requests on pattern.
func OPTIONS(pattern string, h junction.Handler) Router {
	return NewRoute(junction.OPTIONS, pattern, h)
}

func (rt route) Match(req junction.Request) (junction.Handler, bool) {
	if req.Method() != rt.method {
		return nil, false
	}
	if !rt.template.Matches(req.Path()) {
		return nil, false
	}

	tmpl := rt.template.String()
	tagged := func(req junction.Request) junction.Response {
		resp := rt.handler(req.WithReplacedHeader(junction.TemplateHeader, tmpl))
		// The innermost matching route wins: keep an existing stamp so that
		// nested dispatch reports the leaf template.
		if resp.Header(junction.TemplateHeader) == "" {
			resp = resp.WithHeader(junction.TemplateHeader, tmpl)
		}
		return resp
	}
	return rt.filter(tagged), true
}

func (rt route) Handler() junction.Handler {
	return matchOrNotFound(rt)
}

func (rt route) WithBasePath(prefix string) Router {
	rt.template = rt.template.WithPrefix(prefix)
	return rt
}

// WithFilter composes f inside any previously attached filter, so the filter
// added first stays outermost — the same ordering every other router kind
// applies.
func (rt route) WithFilter(f junction.Filter) Router {
	rt.filter = rt.filter.Then(f)
	return rt
}
