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

// Package routing turns junction Handlers into composable route trees.
//
// The central capability is Router: given a request, either produce a
// handler or report "no match". No match is a first-class value, never an
// error, which is what makes routers compose — Then chains two routers
// first-match-wins, and Routes folds any number of them into an ordered
// group with an optional base path and an attached filter.
//
//	app := routing.Routes(
//	    routing.GET("/users/{id}", showUser),
//	    routing.POST("/users", createUser),
//	    routing.Routes(
//	        routing.GET("/health", health),
//	    ).WithBasePath("/internal"),
//	    routing.Static("/assets", routing.Dir("./public")),
//	).WithFilter(filter.AccessLog())
//
//	http.ListenAndServe(":8080", junction.Adapt(app.Handler()))
//
// # Rebuilding, never mutating
//
// WithFilter and WithBasePath return new routers and leave the receiver
// untouched (children are shared structurally). A router tree is built once
// and is safe for concurrent use; the same sub-tree can appear under several
// parents.
//
// # Matching rules
//
// A route matches when its template matches the request path structurally
// and the method is exactly equal. Wrong method is a plain non-match, not a
// 405 — the search simply continues, so a GET route and a POST route on the
// same template coexist in one group. Within a group, children are tried in
// declaration order and the first match wins.
//
// Once a route matches, the matched template is stamped onto the request
// (and response) under junction.TemplateHeader so that handlers and filters
// can recover it — see MatchedTemplate and PathParam. The boundary adapter
// strips the header before anything leaves the process.
package routing
