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

package junction

// Handler is a total, synchronous function from Request to Response.
// Handlers never return errors; failure is expressed as a response status.
type Handler func(Request) Response

// Filter decorates a Handler with pre- and post-processing, producing
// another Handler. A Filter may rewrite the request before calling next,
// rewrite the response after, or short-circuit without calling next at all.
type Filter func(next Handler) Handler

// Then composes two filters. The receiver is outermost: f.Then(g) applies f
// around g, so f sees the raw request first and the final response last.
// Composition is associative.
func (f Filter) Then(g Filter) Filter {
	return func(next Handler) Handler {
		return f(g(next))
	}
}

// ThenHandler terminates a filter chain with a handler.
func (f Filter) ThenHandler(h Handler) Handler {
	return f(h)
}

// NoopFilter returns the identity filter. It is the zero element of Then:
// NoopFilter().Then(f) behaves exactly like f.
func NoopFilter() Filter {
	return func(next Handler) Handler {
		return next
	}
}
