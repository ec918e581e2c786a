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

// MatchedTemplate returns the route template that matched the request,
// e.g. "/users/{id}".
//
// Calling it on a request that never went through a matching route is a
// programmer error and panics: the template is routing metadata, and its
// absence means the handler was invoked outside a router. Use
// RequestTemplate when absence is expected.
func MatchedTemplate(req junction.Request) string {
	tmpl := req.Header(junction.TemplateHeader)
	if tmpl == "" {
		panic("routing: request carries no matched template; handler invoked outside a router?")
	}
	return tmpl
}

// RequestTemplate returns the matched template carried by the request, or
// fallback when absent. Intended for observability code that must behave on
// unrouted requests.
func RequestTemplate(req junction.Request, fallback string) string {
	if tmpl := req.Header(junction.TemplateHeader); tmpl != "" {
		return tmpl
	}
	return fallback
}

// ResponseTemplate returns the matched template stamped onto the response,
// or fallback when absent. Filters attached above the routing decision see
// the pre-match request, so the response stamp is their only way to learn
// which template won — this is what keeps metrics labels low-cardinality.
func ResponseTemplate(resp junction.Response, fallback string) string {
	if tmpl := resp.Header(junction.TemplateHeader); tmpl != "" {
		return tmpl
	}
	return fallback
}

// PathParam extracts a single placeholder value from the request path using
// the matched template. Returns "" when the parameter does not exist.
// Panics like MatchedTemplate when the request carries no template.
func PathParam(req junction.Request, name string) string {
	values := uritemplate.New(MatchedTemplate(req)).Extract(req.Path())
	return values[name]
}
