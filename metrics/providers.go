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

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// initProvider builds the meter provider for the configured backend.
func (r *Recorder) initProvider(cfg *config) error {
	if cfg.meterProvider != nil {
		r.meterProvider = cfg.meterProvider
		return nil
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.serviceName))

	switch cfg.provider {
	case PrometheusProvider:
		return r.initPrometheus(res)
	case OTLPProvider:
		return r.initOTLP(cfg, res)
	case StdoutProvider:
		return r.initStdout(res)
	default:
		return fmt.Errorf("unsupported metrics provider: %s", cfg.provider)
	}
}

// initPrometheus wires a private client_golang registry to an otel reader.
// The process-global prometheus registry is never touched.
func (r *Recorder) initPrometheus(res *resource.Resource) error {
	registry := promclient.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return fmt.Errorf("prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	r.meterProvider = mp
	r.promHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	r.shutdown = mp.Shutdown
	return nil
}

// initOTLP pushes metrics to an OTLP HTTP collector endpoint.
func (r *Recorder) initOTLP(cfg *config, res *resource.Resource) error {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.endpoint)}
	if cfg.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	r.meterProvider = mp
	r.shutdown = mp.Shutdown
	return nil
}

// initStdout prints metrics to stdout for development and tests.
func (r *Recorder) initStdout(res *resource.Resource) error {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("stdout exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	r.meterProvider = mp
	r.shutdown = mp.Shutdown
	return nil
}
