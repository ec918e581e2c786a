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
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// newTracerProvider builds the provider selected by cfg and returns it with
// its shutdown function.
func newTracerProvider(cfg config) (trace.TracerProvider, func(context.Context) error, error) {
	switch cfg.provider {
	case NoopProvider:
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	case StdoutProvider:
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		tp := sdkProvider(cfg, exporter)
		return tp, tp.Shutdown, nil
	case OTLPProvider:
		grpcOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.endpoint)}
		if cfg.insecure {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithInsecure())
		}
		exporter, err := otlptracegrpc.New(context.Background(), grpcOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("create OTLP gRPC exporter: %w", err)
		}
		tp := sdkProvider(cfg, exporter)
		return tp, tp.Shutdown, nil
	case OTLPHTTPProvider:
		httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.endpoint)}
		if cfg.insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(context.Background(), httpOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("create OTLP HTTP exporter: %w", err)
		}
		tp := sdkProvider(cfg, exporter)
		return tp, tp.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider: %q", cfg.provider)
	}
}

func sdkProvider(cfg config, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.sampleRatio))),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.serviceName),
		)),
	)
}
