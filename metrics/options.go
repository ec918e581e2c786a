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

package metrics

import "go.opentelemetry.io/otel/metric"

// Provider identifies the metrics export backend.
type Provider string

const (
	// PrometheusProvider exposes metrics for scraping via a private
	// Prometheus registry (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider pushes metrics to an OTLP HTTP collector.
	OTLPProvider Provider = "otlp"
	// StdoutProvider prints metrics to stdout; development and tests only.
	StdoutProvider Provider = "stdout"
)

// config holds Recorder construction settings.
type config struct {
	provider        Provider
	serviceName     string
	endpoint        string
	insecure        bool
	durationBuckets []float64
	meterProvider   metric.MeterProvider // non-nil overrides provider selection
}

// Option defines functional options for Recorder configuration.
type Option func(*config)

// WithServiceName sets the service.name resource attribute.
// Defaults to "junction".
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// WithPrometheus selects the Prometheus provider. This is the default; the
// option exists to make the choice explicit at call sites.
func WithPrometheus() Option {
	return func(c *config) {
		c.provider = PrometheusProvider
	}
}

// WithOTLP selects the OTLP HTTP provider pushing to endpoint
// (host:port, no scheme).
func WithOTLP(endpoint string) Option {
	return func(c *config) {
		c.provider = OTLPProvider
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS on the OTLP connection. Local collectors only.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

// WithStdout selects the stdout provider.
func WithStdout() Option {
	return func(c *config) {
		c.provider = StdoutProvider
	}
}

// WithMeterProvider uses an externally managed meter provider instead of
// constructing one. The Recorder will not shut it down.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithDurationBuckets overrides the request duration histogram boundaries
// (seconds).
func WithDurationBuckets(buckets []float64) Option {
	return func(c *config) {
		c.durationBuckets = buckets
	}
}
