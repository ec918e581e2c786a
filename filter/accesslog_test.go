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

package filter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

// captureLogger returns a JSON slog logger writing into buf.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

// logLines decodes each JSON log line written into buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestAccessLog_LogsRoutedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := routing.Routes(
		routing.GET("/users/{id}", func(junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK).WithText("user")
		}),
	).WithFilter(AccessLog(WithLogger(captureLogger(&buf))))

	app.Handler()(junction.MustRequest(junction.GET, "/users/42"))

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "request", lines[0]["msg"])
	assert.Equal(t, "GET", lines[0]["method"])
	assert.Equal(t, "/users/42", lines[0]["path"])
	assert.Equal(t, "/users/{id}", lines[0]["route"])
	assert.Equal(t, float64(http.StatusOK), lines[0]["status"])
	assert.Equal(t, float64(4), lines[0]["size"])
}

func TestAccessLog_UnmatchedRouteLabel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := routing.Routes(
		routing.GET("/known", func(junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK)
		}),
	).WithFilter(AccessLog(WithLogger(captureLogger(&buf))))

	app.Handler()(junction.MustRequest(junction.GET, "/unknown"))

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "_unmatched", lines[0]["route"])
	assert.Equal(t, float64(http.StatusNotFound), lines[0]["status"])
}

func TestAccessLog_ExcludePaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logged := AccessLog(
		WithLogger(captureLogger(&buf)),
		WithExcludePaths("/health", "/metrics"),
	).ThenHandler(func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusOK)
	})

	logged(junction.MustRequest(junction.GET, "/health"))
	logged(junction.MustRequest(junction.GET, "/metrics"))
	logged(junction.MustRequest(junction.GET, "/api"))

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "/api", lines[0]["path"])
}

func TestAccessLog_SlowRequestWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logged := AccessLog(
		WithLogger(captureLogger(&buf)),
		WithSlowThreshold(time.Nanosecond),
	).ThenHandler(func(junction.Request) junction.Response {
		time.Sleep(time.Millisecond)
		return junction.NewResponse(http.StatusOK)
	})

	logged(junction.MustRequest(junction.GET, "/slow"))

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "slow request", lines[0]["msg"])
}
