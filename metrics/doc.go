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

// Package metrics records HTTP request metrics through OpenTelemetry.
//
// A Recorder owns a meter provider and a fixed set of HTTP server
// instruments (request count, duration, active requests, response size).
// Recorder.Filter returns a junction.Filter that records one measurement
// set per request, labeled with the matched route template rather than the
// raw path so that label cardinality stays bounded.
//
// Providers are selected with functional options. Prometheus is the
// default and keeps its own private registry — the package never touches
// global state:
//
//	rec, err := metrics.New(metrics.WithServiceName("checkout"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Shutdown(context.Background())
//
//	app := routes.WithFilter(rec.Filter())
//	http.Handle("/metrics", rec.PrometheusHandler())
//
// OTLP (collector push) and stdout (development) providers are available
// via WithOTLP and WithStdout, or bring a configured meter provider with
// WithMeterProvider.
package metrics
