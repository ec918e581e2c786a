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

// Package junction provides the core value types and composition primitives
// for an HTTP toolkit built around plain functions.
//
// The entire model fits in two lines:
//
//	type Handler func(Request) Response
//	type Filter  func(Handler) Handler
//
// A Handler is a total, synchronous function from an immutable Request to an
// immutable Response. A Filter decorates a Handler to produce another Handler,
// which makes cross-cutting concerns (logging, auth, metrics) ordinary values
// that compose with Then.
//
// # Immutability
//
// Request and Response are immutable values. Every With* method returns a new
// copy and leaves the receiver untouched, so messages can be shared across
// goroutines without coordination:
//
//	req, _ := junction.NewRequest(junction.GET, "/users/42")
//	tagged := req.WithHeader("Accept", "application/json")
//	// req is unchanged
//
// # Composition
//
// Filters compose left-to-right with the leftmost filter outermost: in
// f1.Then(f2), f1 sees the raw request first and the final response last.
//
//	app := filter.AccessLog().Then(filter.Recover()).ThenHandler(myHandler)
//
// Routing on top of these primitives lives in the routing package. The
// junction package itself knows nothing about path templates or dispatch;
// it only defines the algebra routers are built from, plus the seam to
// net/http (Adapt, FromHTTP) used to plug a Handler into any Go server.
package junction
