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

// Package tracing creates OpenTelemetry spans around request dispatch.
//
// Tracer.Filter returns a junction.Filter that extracts W3C trace context
// from the incoming request headers, opens a server span, propagates the
// span context to the wrapped handler (both on the request context and as
// outgoing trace headers), and names the finished span after the matched
// route template — "GET /users/{id}", not the raw path.
//
//	tr, err := tracing.New(tracing.WithOTLP("collector:4317"), tracing.WithInsecure())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tr.Shutdown(context.Background())
//
//	app := routes.WithFilter(tr.Filter())
//
// The default provider is a no-op, so the filter can stay wired in tests
// and development without an exporter behind it.
package tracing
