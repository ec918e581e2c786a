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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

// recordingTracer returns a Tracer capturing finished spans in memory.
func recordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer, err := New(WithTracerProvider(tp))
	require.NoError(t, err)
	return tracer, recorder
}

func attrValue(span sdktrace.ReadOnlySpan, key string) string {
	for _, attr := range span.Attributes() {
		if string(attr.Key) == key {
			return attr.Value.Emit()
		}
	}
	return ""
}

func TestNew_DefaultsToNoop(t *testing.T) {
	t.Parallel()

	tracer, err := New()
	require.NoError(t, err)

	handler := tracer.Filter().ThenHandler(func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusOK)
	})
	resp := handler(junction.MustRequest(junction.GET, "/ping"))

	assert.Equal(t, http.StatusOK, resp.Status())
	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestFilter_NamesSpanAfterRouteTemplate(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	app := routing.Routes(
		routing.GET("/users/{id}", func(junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK)
		}),
	).WithFilter(tracer.Filter())

	app.Handler()(junction.MustRequest(junction.GET, "/users/42"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /users/{id}", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Equal(t, "/users/{id}", attrValue(spans[0], "http.route"))
	assert.Equal(t, "/users/42", attrValue(spans[0], "url.path"))
	assert.Equal(t, "200", attrValue(spans[0], "http.response.status_code"))
}

func TestFilter_UnmatchedRequestKeepsPathName(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	app := routing.Routes().WithFilter(tracer.Filter())

	app.Handler()(junction.MustRequest(junction.GET, "/missing"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /missing", spans[0].Name())
	assert.Empty(t, attrValue(spans[0], "http.route"))
}

func TestFilter_ServerErrorSetsErrorStatus(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	handler := tracer.Filter().ThenHandler(func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusBadGateway)
	})

	handler(junction.MustRequest(junction.GET, "/upstream"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "HTTP 502", spans[0].Status().Description)
}

func TestFilter_ClientErrorIsNotSpanError(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	handler := tracer.Filter().ThenHandler(func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusNotFound)
	})

	handler(junction.MustRequest(junction.GET, "/missing"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestFilter_ExtractsInboundTraceContext(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	handler := tracer.Filter().ThenHandler(func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusOK)
	})

	const inbound = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"
	handler(junction.MustRequest(junction.GET, "/").
		WithHeader("traceparent", inbound))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "0af7651916cd43dd8448eb211c80319c",
		spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "b7ad6b7169203331", spans[0].Parent().SpanID().String())
}

func TestFilter_InjectsContextIntoDownstreamRequest(t *testing.T) {
	t.Parallel()

	tracer, recorder := recordingTracer(t)
	var seenTraceparent string
	handler := tracer.Filter().ThenHandler(func(req junction.Request) junction.Response {
		seenTraceparent = req.Header("traceparent")
		// The span is live inside the handler via the request context.
		assert.True(t, trace.SpanContextFromContext(req.Context()).IsValid())
		return junction.NewResponse(http.StatusOK)
	})

	handler(junction.MustRequest(junction.GET, "/"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, seenTraceparent, spans[0].SpanContext().TraceID().String())
}
