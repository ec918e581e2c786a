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

package tracing

import "go.opentelemetry.io/otel/trace"

// Provider identifies the trace export backend.
type Provider string

const (
	// NoopProvider records nothing (default).
	NoopProvider Provider = "noop"
	// StdoutProvider prints spans to stdout; development and tests only.
	StdoutProvider Provider = "stdout"
	// OTLPProvider exports spans to an OTLP gRPC collector.
	OTLPProvider Provider = "otlp"
	// OTLPHTTPProvider exports spans to an OTLP HTTP collector.
	OTLPHTTPProvider Provider = "otlp-http"
)

// config holds Tracer construction settings.
type config struct {
	provider       Provider
	serviceName    string
	endpoint       string
	insecure       bool
	sampleRatio    float64
	tracerProvider trace.TracerProvider // non-nil overrides provider selection
}

// Option defines functional options for Tracer configuration.
type Option func(*config)

// WithServiceName sets the service.name resource attribute.
// Defaults to "junction".
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// WithStdout selects the stdout provider.
func WithStdout() Option {
	return func(c *config) {
		c.provider = StdoutProvider
	}
}

// WithOTLP selects the OTLP gRPC provider exporting to endpoint
// (host:port, no scheme).
func WithOTLP(endpoint string) Option {
	return func(c *config) {
		c.provider = OTLPProvider
		c.endpoint = endpoint
	}
}

// WithOTLPHTTP selects the OTLP HTTP provider exporting to endpoint.
func WithOTLPHTTP(endpoint string) Option {
	return func(c *config) {
		c.provider = OTLPHTTPProvider
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS on the OTLP connection. Local collectors only.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

// WithSampleRatio sets the ratio of traces to sample, 0.0 to 1.0.
// Defaults to 1.0 (sample everything).
func WithSampleRatio(ratio float64) Option {
	return func(c *config) {
		c.sampleRatio = ratio
	}
}

// WithTracerProvider uses an externally managed tracer provider instead of
// constructing one. The Tracer will not shut it down.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
