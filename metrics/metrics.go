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

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

// scopeName is the instrumentation scope reported with every measurement.
const scopeName = "junction.dev/junction/metrics"

// DefaultDurationBuckets are histogram boundaries for request duration in
// seconds, covering sub-millisecond to 10 second responses.
var DefaultDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// DefaultSizeBuckets are histogram boundaries for response size in bytes,
// covering 100B to 10MB.
var DefaultSizeBuckets = []float64{100, 1000, 10000, 100000, 1000000, 10000000}

// Recorder holds the meter provider and HTTP instruments.
// All methods are safe for concurrent use.
type Recorder struct {
	meterProvider metric.MeterProvider
	promHandler   http.Handler
	shutdown      func(context.Context) error

	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
	responseSize    metric.Int64Histogram
}

// New creates a Recorder. Without options it uses the Prometheus provider
// with a private registry and the default histogram buckets.
//
// New returns an error rather than panicking because provider construction
// can genuinely fail (exporter setup, instrument registration).
func New(opts ...Option) (*Recorder, error) {
	cfg := &config{
		provider:        PrometheusProvider,
		serviceName:     "junction",
		durationBuckets: DefaultDurationBuckets,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Recorder{}
	if err := r.initProvider(cfg); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := r.initInstruments(cfg); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return r, nil
}

// MustNew is like New but panics on error. Convenient at program startup
// where a broken metrics configuration should fail fast.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("metrics.MustNew: %v", err))
	}
	return r
}

// initInstruments registers the fixed HTTP server instrument set.
func (r *Recorder) initInstruments(cfg *config) error {
	meter := r.meterProvider.Meter(scopeName)

	var err error
	if r.requestCount, err = meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests handled"),
	); err != nil {
		return err
	}
	if r.requestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(cfg.durationBuckets...),
	); err != nil {
		return err
	}
	if r.activeRequests, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	); err != nil {
		return err
	}
	if r.responseSize, err = meter.Int64Histogram("http.server.response.size",
		metric.WithDescription("HTTP response body size"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(DefaultSizeBuckets...),
	); err != nil {
		return err
	}
	return nil
}

// Filter returns a junction.Filter recording one measurement set per
// request. The http.route attribute comes from the matched template stamped
// onto the response; unmatched requests are recorded under the "_unmatched"
// sentinel to keep cardinality bounded.
func (r *Recorder) Filter() junction.Filter {
	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) junction.Response {
			ctx := req.Context()
			r.activeRequests.Add(ctx, 1)
			start := time.Now()

			resp := next(req)

			elapsed := time.Since(start)
			r.activeRequests.Add(ctx, -1)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", req.Method().String()),
				attribute.Int("http.response.status_code", resp.Status()),
				attribute.String("http.route", routing.ResponseTemplate(resp, "_unmatched")),
			)
			r.requestCount.Add(ctx, 1, attrs)
			r.requestDuration.Record(ctx, elapsed.Seconds(), attrs)
			r.responseSize.Record(ctx, int64(len(resp.Body())), attrs)
			return resp
		}
	}
}

// MeterProvider returns the underlying meter provider, for registering
// custom instruments alongside the built-in set.
func (r *Recorder) MeterProvider() metric.MeterProvider {
	return r.meterProvider
}

// PrometheusHandler returns the scrape handler for the private registry,
// or nil when the Recorder does not use the Prometheus provider.
func (r *Recorder) PrometheusHandler() http.Handler {
	return r.promHandler
}

// Shutdown flushes and stops a Recorder-owned provider. It is a no-op for
// providers supplied via WithMeterProvider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}
