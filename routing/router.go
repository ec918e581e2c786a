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
	"net/http"

	"junction.dev/junction"
)

// Router decides whether it recognizes a request. Implementations are
// immutable after construction and safe for concurrent use.
type Router interface {
	// Match returns the handler for the request, or false if this router
	// does not recognize it. Match is pure: it never mutates the router or
	// the request, and "no match" is an ordinary return value, never an
	// error. The returned handler already carries any filters attached at
	// the matching level and tags the request with the matched template.
	Match(req junction.Request) (junction.Handler, bool)

	// Handler adapts the router into a total Handler: match and invoke, or
	// respond 404 when nothing matches. This is the boundary where "no
	// match" becomes an observable HTTP response.
	Handler() junction.Handler

	// WithBasePath returns a new router with prefix applied in front of
	// every template, recursively through nested groups. The receiver is
	// unchanged.
	WithBasePath(prefix string) Router

	// WithFilter returns a new router whose matched handlers are wrapped
	// with f, composed outside any previously attached filter. The receiver
	// is unchanged.
	WithFilter(f junction.Filter) Router
}

// Then chains two routers first-match-wins: the result tries r, and falls
// through to next only when r reports no match. Composition is associative:
// Then(Then(a, b), c) and Then(a, Then(b, c)) route identically.
func Then(r, next Router) Router {
	return composite{first: r, second: next}
}

// composite is the first-match-wins pair produced by Then.
type composite struct {
	first  Router
	second Router
}

func (c composite) Match(req junction.Request) (junction.Handler, bool) {
	if h, ok := c.first.Match(req); ok {
		return h, true
	}
	return c.second.Match(req)
}

func (c composite) Handler() junction.Handler {
	return matchOrNotFound(c)
}

func (c composite) WithBasePath(prefix string) Router {
	return composite{first: c.first.WithBasePath(prefix), second: c.second.WithBasePath(prefix)}
}

func (c composite) WithFilter(f junction.Filter) Router {
	return composite{first: c.first.WithFilter(f), second: c.second.WithFilter(f)}
}

// notFound is the canonical no-match response.
func notFound() junction.Response {
	return junction.NewResponse(http.StatusNotFound)
}

// notFoundHandler ignores the request and responds 404.
func notFoundHandler(junction.Request) junction.Response {
	return notFound()
}

// matchOrNotFound is the default Handler adaptation shared by router kinds
// that carry no filter of their own.
func matchOrNotFound(r Router) junction.Handler {
	return func(req junction.Request) junction.Response {
		if h, ok := r.Match(req); ok {
			return h(req)
		}
		return notFound()
	}
}
