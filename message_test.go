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

package junction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_ParsesURL(t *testing.T) {
	t.Parallel()

	req, err := NewRequest(GET, "/users/42?verbose=true")

	require.NoError(t, err)
	assert.Equal(t, GET, req.Method())
	assert.Equal(t, "/users/42", req.Path())
	assert.Equal(t, "true", req.Query("verbose"))
}

func TestNewRequest_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewRequest(GET, "://nope")

	require.Error(t, err)
}

func TestMustRequest_PanicsOnInvalidURL(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustRequest(GET, "://nope")
	})
}

func TestRequest_PathDefaultsToRoot(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "")

	assert.Equal(t, "/", req.Path())
}

func TestRequest_WithHeaderDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	original := MustRequest(GET, "/").WithHeader("Accept", "text/plain")
	modified := original.WithHeader("Accept", "application/json")

	assert.Equal(t, []string{"text/plain"}, original.HeaderValues("Accept"))
	assert.Equal(t, []string{"text/plain", "application/json"}, modified.HeaderValues("Accept"))
}

func TestRequest_WithHeaderSharedBase(t *testing.T) {
	t.Parallel()

	// Two derivations from the same base must not clobber each other through
	// a shared backing array.
	base := MustRequest(GET, "/").WithHeader("A", "1")
	left := base.WithHeader("B", "left")
	right := base.WithHeader("B", "right")

	assert.Equal(t, "left", left.Header("B"))
	assert.Equal(t, "right", right.Header("B"))
	assert.Empty(t, base.Header("B"))
}

func TestRequest_HeaderIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "/").WithHeader("Content-Type", "text/html")

	assert.Equal(t, "text/html", req.Header("content-type"))
	assert.Equal(t, "text/html", req.Header("CONTENT-TYPE"))
}

func TestRequest_WithReplacedHeader(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "/").
		WithHeader("Accept", "text/plain").
		WithHeader("Accept", "text/html").
		WithReplacedHeader("Accept", "application/json")

	assert.Equal(t, []string{"application/json"}, req.HeaderValues("Accept"))
}

func TestRequest_WithoutHeader(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "/").
		WithHeader("Accept", "text/plain").
		WithHeader("accept", "text/html").
		WithHeader("Host", "example.com").
		WithoutHeader("Accept")

	assert.Empty(t, req.HeaderValues("Accept"))
	assert.Equal(t, "example.com", req.Header("Host"))
}

func TestRequest_HeadersPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "/").
		WithHeader("B", "2").
		WithHeader("A", "1").
		WithHeader("B", "3")

	headers := req.Headers()
	require.Len(t, headers, 3)
	assert.Equal(t, Header{Name: "B", Value: "2"}, headers[0])
	assert.Equal(t, Header{Name: "A", Value: "1"}, headers[1])
	assert.Equal(t, Header{Name: "B", Value: "3"}, headers[2])
}

func TestRequest_Body(t *testing.T) {
	t.Parallel()

	req := MustRequest(POST, "/users").WithText(`{"name":"alice"}`)

	assert.Equal(t, `{"name":"alice"}`, req.BodyString())
	assert.Empty(t, MustRequest(POST, "/users").BodyString())
}

func TestRequest_ContextNeverNil(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Request{}.Context())

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	req := MustRequest(GET, "/").WithContext(ctx)
	assert.Equal(t, "v", req.Context().Value(key{}))
}

func TestRequest_URLReturnsCopy(t *testing.T) {
	t.Parallel()

	req := MustRequest(GET, "/users/42")
	req.URL().Path = "/mutated"

	assert.Equal(t, "/users/42", req.Path())
}

func TestResponse_Immutable(t *testing.T) {
	t.Parallel()

	original := NewResponse(200).WithText("ok")
	modified := original.WithHeader("Content-Type", "text/plain").WithText("changed")

	assert.Equal(t, "ok", original.BodyString())
	assert.Empty(t, original.Header("Content-Type"))
	assert.Equal(t, "changed", modified.BodyString())
	assert.Equal(t, "text/plain", modified.Header("Content-Type"))
}

func TestMethod_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "DELETE", DELETE.String())
}
