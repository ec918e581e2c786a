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

package routing_test

import (
	"fmt"
	"net/http"

	"junction.dev/junction"
	"junction.dev/junction/routing"
)

// ExampleRoutes demonstrates building and dispatching a route tree entirely
// in memory — no server, no sockets.
func ExampleRoutes() {
	app := routing.Routes(
		routing.GET("/users/{id}", func(req junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK).
				WithText("user " + routing.PathParam(req, "id"))
		}),
		routing.POST("/users", func(junction.Request) junction.Response {
			return junction.NewResponse(http.StatusCreated)
		}),
	)

	handler := app.Handler()
	fmt.Println(handler(junction.MustRequest(junction.GET, "/users/42")).BodyString())
	fmt.Println(handler(junction.MustRequest(junction.POST, "/users")).Status())
	fmt.Println(handler(junction.MustRequest(junction.GET, "/missing")).Status())
	// Output:
	// user 42
	// 201
	// 404
}

// ExampleGroup_WithBasePath demonstrates recursive rebasing: base paths
// compose through every nesting level.
func ExampleGroup_WithBasePath() {
	inner := routing.Routes(
		routing.GET("/status", func(junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK).WithText("ok")
		}),
	).WithBasePath("/v1")
	app := routing.Routes(inner).WithBasePath("/api")

	resp := app.Handler()(junction.MustRequest(junction.GET, "/api/v1/status"))
	fmt.Println(resp.Status(), resp.BodyString())
	// Output: 200 ok
}

// ExampleThen demonstrates first-match-wins chaining of two routers.
func ExampleThen() {
	api := routing.GET("/users/{id}", func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusOK).WithText("api")
	})
	fallback := routing.GET("/{page}", func(junction.Request) junction.Response {
		return junction.NewResponse(http.StatusOK).WithText("fallback")
	})

	handler := routing.Then(api, fallback).Handler()
	fmt.Println(handler(junction.MustRequest(junction.GET, "/users/42")).BodyString())
	fmt.Println(handler(junction.MustRequest(junction.GET, "/about")).BodyString())
	// Output:
	// api
	// fallback
}

// ExampleMatchedTemplate demonstrates recovering the route template inside a
// handler, typically for reverse routing or observability labels.
func ExampleMatchedTemplate() {
	app := routing.Routes(
		routing.GET("/users/{id}/posts/{postId}", func(req junction.Request) junction.Response {
			return junction.NewResponse(http.StatusOK).WithText(routing.MatchedTemplate(req))
		}),
	)

	resp := app.Handler()(junction.MustRequest(junction.GET, "/users/1/posts/2"))
	fmt.Println(resp.BodyString())
	// Output: /users/{id}/posts/{postId}
}
