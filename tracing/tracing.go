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

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

const scopeName = "junction.dev/junction/tracing"

// Tracer opens a server span per request and propagates W3C trace context.
//
// Construct one with New, install its Filter on a router, and call Shutdown
// during graceful termination to flush buffered spans.
type Tracer struct {
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	propagator     propagation.TextMapPropagator
	shutdown       func(context.Context) error
}

// New creates a Tracer. With no options it records nothing; pick a provider
// with WithStdout, WithOTLP, WithOTLPHTTP, or WithTracerProvider.
func New(opts ...Option) (*Tracer, error) {
	cfg := config{
		provider:    NoopProvider,
		serviceName: "junction",
		sampleRatio: 1.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tracer{
		propagator: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
		shutdown: func(context.Context) error { return nil },
	}

	if cfg.tracerProvider != nil {
		t.tracerProvider = cfg.tracerProvider
	} else {
		tp, shutdown, err := newTracerProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("create tracer provider: %w", err)
		}
		t.tracerProvider = tp
		t.shutdown = shutdown
	}
	t.tracer = t.tracerProvider.Tracer(scopeName)
	return t, nil
}

// MustNew is like New but panics on error. Intended for main-path wiring
// where a broken exporter configuration should abort startup.
func MustNew(opts ...Option) *Tracer {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Filter returns a junction.Filter that extracts inbound trace context,
// wraps the downstream handler in a server span, and names the finished
// span after the matched route template ("GET /users/{id}").
func (t *Tracer) Filter() junction.Filter {
	return func(next junction.Handler) junction.Handler {
		return func(req junction.Request) junction.Response {
			ctx := t.propagator.Extract(req.Context(), requestCarrier{req: &req})

			ctx, span := t.tracer.Start(ctx, req.Method().String()+" "+req.Path(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method().String()),
					attribute.String("url.path", req.Path()),
				),
			)
			defer span.End()

			// Hand the span context downstream both in-process and on the
			// wire, so nested handlers and proxied calls join the trace.
			req = req.WithContext(ctx)
			t.propagator.Inject(ctx, requestCarrier{req: &req})

			resp := next(req)

			if tmpl := routing.ResponseTemplate(resp, ""); tmpl != "" {
				span.SetName(req.Method().String() + " " + tmpl)
				span.SetAttributes(attribute.String("http.route", tmpl))
			}
			span.SetAttributes(attribute.Int("http.response.status_code", resp.Status()))
			if resp.Status() >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.Status()))
			}
			return resp
		}
	}
}

// TracerProvider exposes the underlying provider for libraries that
// instrument themselves.
func (t *Tracer) TracerProvider() trace.TracerProvider {
	return t.tracerProvider
}

// Shutdown flushes and stops the trace exporter. No-op for noop and
// externally supplied providers.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}

// requestCarrier adapts junction's ordered header list to the otel
// propagation carrier. Set replaces rather than appends: a propagated
// traceparent must not become a multi-valued header.
type requestCarrier struct {
	req *junction.Request
}

func (c requestCarrier) Get(key string) string {
	return c.req.Header(key)
}

func (c requestCarrier) Set(key, value string) {
	*c.req = c.req.WithReplacedHeader(key, value)
}

func (c requestCarrier) Keys() []string {
	headers := c.req.Headers()
	keys := make([]string, 0, len(headers))
	for _, h := range headers {
		keys = append(keys, h.Name)
	}
	return keys
}
