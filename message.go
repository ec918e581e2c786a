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
	"net/url"
	"strings"
)

// TemplateHeader is the reserved header carrying the matched route template.
// The routing package stamps it onto requests (and responses) once a route
// matches, so that handlers and filters can recover which template was used
// for metrics, tracing, or reverse routing.
//
// This header is internal plumbing: Adapt strips it from inbound client
// requests and outbound responses, so it never crosses the process boundary.
const TemplateHeader = "x-uri-template"

// Header is a single name/value pair. Headers form an ordered multimap:
// insertion order is preserved and duplicate names are allowed. Name
// comparison is case-insensitive, as HTTP requires.
type Header struct {
	Name  string
	Value string
}

// headerGet returns the first value for name, or "".
func headerGet(headers []Header, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// headerValues returns all values for name in insertion order.
func headerValues(headers []Header, name string) []string {
	var values []string
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			values = append(values, h.Value)
		}
	}
	return values
}

// headerAdd appends a header, never aliasing the input slice's backing array.
func headerAdd(headers []Header, name, value string) []Header {
	out := make([]Header, len(headers), len(headers)+1)
	copy(out, headers)
	return append(out, Header{Name: name, Value: value})
}

// headerRemove drops every occurrence of name.
func headerRemove(headers []Header, name string) []Header {
	out := make([]Header, 0, len(headers))
	for _, h := range headers {
		if !strings.EqualFold(h.Name, name) {
			out = append(out, h)
		}
	}
	return out
}

// Request is an immutable HTTP request value: method, URI, ordered headers
// and a fully buffered body. All With* methods copy; a Request can be shared
// freely across goroutines.
type Request struct {
	method  Method
	url     *url.URL
	headers []Header
	body    []byte
	ctx     context.Context
}

// NewRequest creates a request for the given method and URL.
// The URL may be a bare path ("/users/42") or a full URL with query.
func NewRequest(method Method, rawURL string) (Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Request{}, err
	}
	return Request{method: method, url: u, ctx: context.Background()}, nil
}

// MustRequest is like NewRequest but panics on an invalid URL.
// Intended for tests and for routes built from literals.
func MustRequest(method Method, rawURL string) Request {
	req, err := NewRequest(method, rawURL)
	if err != nil {
		panic("junction: invalid URL: " + err.Error())
	}
	return req
}

// Method returns the request method.
func (r Request) Method() Method {
	return r.method
}

// URL returns a copy of the request URL.
func (r Request) URL() *url.URL {
	if r.url == nil {
		return &url.URL{Path: "/"}
	}
	u := *r.url
	return &u
}

// Path returns the URL path, defaulting to "/".
func (r Request) Path() string {
	if r.url == nil || r.url.Path == "" {
		return "/"
	}
	return r.url.Path
}

// Query returns the first query parameter value for key, or "".
func (r Request) Query(key string) string {
	if r.url == nil {
		return ""
	}
	return r.url.Query().Get(key)
}

// Header returns the first header value for name (case-insensitive), or "".
func (r Request) Header(name string) string {
	return headerGet(r.headers, name)
}

// HeaderValues returns all header values for name in insertion order.
func (r Request) HeaderValues(name string) []string {
	return headerValues(r.headers, name)
}

// Headers returns a copy of all headers in insertion order.
func (r Request) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// WithHeader returns a copy with the header appended.
func (r Request) WithHeader(name, value string) Request {
	r.headers = headerAdd(r.headers, name, value)
	return r
}

// WithReplacedHeader returns a copy with all occurrences of name removed
// and a single name/value pair appended.
func (r Request) WithReplacedHeader(name, value string) Request {
	r.headers = append(headerRemove(r.headers, name), Header{Name: name, Value: value})
	return r
}

// WithoutHeader returns a copy with all occurrences of name removed.
func (r Request) WithoutHeader(name string) Request {
	r.headers = headerRemove(r.headers, name)
	return r
}

// Body returns the request body. The returned slice must not be modified.
func (r Request) Body() []byte {
	return r.body
}

// BodyString returns the request body as a string.
func (r Request) BodyString() string {
	return string(r.body)
}

// WithBody returns a copy with the given body.
func (r Request) WithBody(body []byte) Request {
	r.body = body
	return r
}

// WithText returns a copy with the given string body.
func (r Request) WithText(body string) Request {
	r.body = []byte(body)
	return r
}

// Context returns the request context, never nil.
func (r Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a copy carrying ctx. Used by tracing filters to
// propagate span contexts alongside the request.
func (r Request) WithContext(ctx context.Context) Request {
	r.ctx = ctx
	return r
}

// Response is an immutable HTTP response value: status, ordered headers and
// a fully buffered body. All With* methods copy.
type Response struct {
	status  int
	headers []Header
	body    []byte
}

// NewResponse creates a response with the given status code and empty body.
func NewResponse(status int) Response {
	return Response{status: status}
}

// Status returns the response status code.
func (r Response) Status() int {
	return r.status
}

// Header returns the first header value for name (case-insensitive), or "".
func (r Response) Header(name string) string {
	return headerGet(r.headers, name)
}

// HeaderValues returns all header values for name in insertion order.
func (r Response) HeaderValues(name string) []string {
	return headerValues(r.headers, name)
}

// Headers returns a copy of all headers in insertion order.
func (r Response) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// WithHeader returns a copy with the header appended.
func (r Response) WithHeader(name, value string) Response {
	r.headers = headerAdd(r.headers, name, value)
	return r
}

// WithReplacedHeader returns a copy with all occurrences of name removed
// and a single name/value pair appended.
func (r Response) WithReplacedHeader(name, value string) Response {
	r.headers = append(headerRemove(r.headers, name), Header{Name: name, Value: value})
	return r
}

// WithoutHeader returns a copy with all occurrences of name removed.
func (r Response) WithoutHeader(name string) Response {
	r.headers = headerRemove(r.headers, name)
	return r
}

// Body returns the response body. The returned slice must not be modified.
func (r Response) Body() []byte {
	return r.body
}

// BodyString returns the response body as a string.
func (r Response) BodyString() string {
	return string(r.body)
}

// WithBody returns a copy with the given body.
func (r Response) WithBody(body []byte) Response {
	r.body = body
	return r
}

// WithText returns a copy with the given string body.
func (r Response) WithText(body string) Response {
	r.body = []byte(body)
	return r
}
