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

// Package uritemplate implements immutable path templates with {param}
// placeholders, the pattern language used by the routing package.
//
// A template is segment-based: "/users/{id}" has two segments, a literal
// "users" and a placeholder "id". A placeholder matches exactly one
// non-empty path segment. Matching is structural and case-sensitive on
// literals; a trailing slash on either side is ignored.
package uritemplate

import "strings"

// segment is one path segment: either a literal or a {param} placeholder.
type segment struct {
	literal string
	param   string // non-empty means placeholder
}

// Template is an immutable, pre-split path pattern. The zero value is not
// usable; construct with New.
type Template struct {
	raw      string
	segments []segment
}

// New parses a pattern into a Template. Patterns are trusted literals
// written by the route author; New is total and never fails. A segment
// wrapped in braces ("{id}") is a placeholder, anything else is matched
// verbatim.
func New(pattern string) *Template {
	parts := split(pattern)
	segments := make([]segment, len(parts))
	for i, p := range parts {
		if len(p) > 2 && p[0] == '{' && p[len(p)-1] == '}' {
			segments[i] = segment{param: p[1 : len(p)-1]}
		} else {
			segments[i] = segment{literal: p}
		}
	}
	return &Template{raw: normalize(pattern), segments: segments}
}

// String renders the pattern in normalized form: a single leading slash,
// no trailing slash (except the root template "/").
func (t *Template) String() string {
	return t.raw
}

// Matches reports whether path structurally matches the whole template:
// same number of segments, literals equal, placeholders filled by any
// non-empty segment.
func (t *Template) Matches(path string) bool {
	parts := split(path)
	if len(parts) != len(t.segments) {
		return false
	}
	return t.matchSegments(parts)
}

// MatchesPrefix reports whether the template matches a leading portion of
// path. A template built from "/a/b" prefix-matches "/a/b/c". The root
// template matches every path.
func (t *Template) MatchesPrefix(path string) bool {
	parts := split(path)
	if len(parts) < len(t.segments) {
		return false
	}
	return t.matchSegments(parts[:len(t.segments)])
}

func (t *Template) matchSegments(parts []string) bool {
	for i, seg := range t.segments {
		if seg.param != "" {
			if parts[i] == "" {
				return false
			}
			continue
		}
		if seg.literal != parts[i] {
			return false
		}
	}
	return true
}

// Extract returns the placeholder values bound by matching path against the
// template, or nil if the path does not match.
func (t *Template) Extract(path string) map[string]string {
	if !t.Matches(path) {
		return nil
	}
	parts := split(path)
	values := make(map[string]string)
	for i, seg := range t.segments {
		if seg.param != "" {
			values[seg.param] = parts[i]
		}
	}
	return values
}

// WithPrefix returns a new template whose pattern is prefix joined in front
// of the existing pattern. The prefix may itself contain placeholders. The
// receiver is never modified.
func (t *Template) WithPrefix(prefix string) *Template {
	return New(Join(prefix, t.raw))
}

// Join concatenates two path fragments with exactly one slash between them
// and a single leading slash on the result.
func Join(a, b string) string {
	a = normalize(a)
	b = normalize(b)
	switch {
	case a == "/":
		return b
	case b == "/":
		return a
	default:
		return a + b
	}
}

// normalize collapses a fragment to "/" + segments with no trailing slash.
func normalize(s string) string {
	parts := split(s)
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// split breaks a path or pattern into its non-empty segments.
func split(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
