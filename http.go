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
	"io"
	"net/http"
	"strings"
)

// FromHTTP converts a net/http request into an immutable Request.
// The body is read eagerly and fully buffered; the original body is closed.
// Any inbound TemplateHeader is dropped so clients cannot spoof routing
// metadata.
func FromHTTP(r *http.Request) Request {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
		r.Body.Close()
	}

	u := *r.URL
	req := Request{
		method: Method(r.Method),
		url:    &u,
		body:   body,
		ctx:    r.Context(),
	}

	headers := make([]Header, 0, len(r.Header))
	for name, values := range r.Header {
		if strings.EqualFold(name, TemplateHeader) {
			continue
		}
		for _, v := range values {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}
	req.headers = headers
	return req
}

// WriteHTTP writes a Response to a net/http ResponseWriter.
// The TemplateHeader is stripped: it is internal plumbing and must not be
// exposed to external clients.
func WriteHTTP(w http.ResponseWriter, resp Response) {
	for _, h := range resp.headers {
		if strings.EqualFold(h.Name, TemplateHeader) {
			continue
		}
		w.Header().Add(h.Name, h.Value)
	}
	status := resp.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(resp.body) > 0 {
		w.Write(resp.body)
	}
}

// Adapt turns a Handler into an http.Handler, the in-process seam between
// this toolkit and any Go HTTP server:
//
//	app := routing.Routes(
//	    routing.GET("/hello/{name}", hello),
//	).Handler()
//	http.ListenAndServe(":8080", junction.Adapt(app))
//
// Transport concerns (timeouts, TLS, connection handling) stay with the
// server; Adapt only converts messages and dispatches.
func Adapt(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteHTTP(w, h(FromHTTP(r)))
	})
}
