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
	"fmt"

	"junction.dev/junction"
	"junction.dev/junction/uritemplate"
)

// Group is an ordered collection of routers scoped under an optional base
// path with an attached filter. It is the composition node for nested
// routing trees: groups contain routes, other groups, static routers, or
// anything else implementing Router.
//
// A Group is immutable. Named, WithBasePath and WithFilter all return new
// instances sharing the original children, so one sub-tree can safely
// appear under several parents and be matched concurrently.
type Group struct {
	name     string
	basePath *uritemplate.Template // nil matches everything
	children []Router
	filter   junction.Filter
}

// Routes builds a Group from the given routers. Children are tried in
// declaration order; the first match wins and short-circuits the rest.
func Routes(children ...Router) *Group {
	return &Group{children: children, filter: junction.NoopFilter()}
}

// Named returns a copy of the group carrying a diagnostic name, reported by
// String. The name has no effect on matching.
func (g *Group) Named(name string) *Group {
	c := *g
	c.name = name
	return &c
}

// String describes the group for logs and debugging.
func (g *Group) String() string {
	base := "/"
	if g.basePath != nil {
		base = g.basePath.String()
	}
	if g.name == "" {
		return fmt.Sprintf("routes[%d] at %s", len(g.children), base)
	}
	return fmt.Sprintf("%s: routes[%d] at %s", g.name, len(g.children), base)
}

// Match gates on the base path, then folds over children in order and
// returns the first match, wrapped with the group's filter. With no base
// path set the gate is vacuously true.
func (g *Group) Match(req junction.Request) (junction.Handler, bool) {
	if g.basePath != nil && !g.basePath.MatchesPrefix(req.Path()) {
		return nil, false
	}
	for _, child := range g.children {
		if h, ok := child.Match(req); ok {
			return g.filter(h), true
		}
	}
	return nil, false
}

// Handler adapts the group into a total Handler. The attached filter wraps
// dispatch even when nothing matches, so cross-cutting behavior such as
// access logging still fires for 404s.
func (g *Group) Handler() junction.Handler {
	return func(req junction.Request) junction.Response {
		if h, ok := g.Match(req); ok {
			return h(req)
		}
		return g.filter(notFoundHandler)(req)
	}
}

// WithBasePath returns a new group rebased under prefix: the group's base
// path becomes prefix + existing base path, and every child is rebased
// recursively, so multiple nesting levels collapse into one fully qualified
// template at each leaf.
func (g *Group) WithBasePath(prefix string) Router {
	children := make([]Router, len(g.children))
	for i, child := range g.children {
		children[i] = child.WithBasePath(prefix)
	}

	base := uritemplate.New(prefix)
	if g.basePath != nil {
		base = g.basePath.WithPrefix(prefix)
	}

	return &Group{name: g.name, basePath: base, children: children, filter: g.filter}
}

// WithFilter returns a new group whose effective filter is the existing
// filter composed around f: filters added earlier stay outermost, seeing
// the raw request first and the final response last.
func (g *Group) WithFilter(f junction.Filter) Router {
	return &Group{name: g.name, basePath: g.basePath, children: g.children, filter: g.filter.Then(f)}
}
