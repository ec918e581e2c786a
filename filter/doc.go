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

// Package filter provides stock junction.Filter implementations for common
// cross-cutting concerns: structured access logging, request IDs, panic
// recovery, and HTTP basic authentication.
//
// Filters are plain values and compose with Then; attach them to a router
// level with WithFilter or terminate a chain with ThenHandler:
//
//	app := routing.Routes(
//	    routing.GET("/users/{id}", showUser),
//	).WithFilter(
//	    filter.Recover().
//	        Then(filter.RequestID()).
//	        Then(filter.AccessLog(filter.WithLogger(logger))),
//	)
//
// Each constructor accepts functional options and returns a filter that is
// safe for concurrent use.
package filter
