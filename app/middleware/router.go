/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Route defines the parameters of an api endpoint
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes are a collection of defined api endpoints
type Routes []Route

// Router defines the required methods for retrieving api routes
type Router interface {
	Routes() Routes
}

// NewRouter creates a new router for any number of api routers. Routes sharing a pattern are grouped under one path
// route so a request with an unsupported method gets 405 whatever the registration order.
func NewRouter(routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	paths := make(map[string]*mux.Router)
	for _, api := range routers {
		for _, route := range api.Routes() {
			path, ok := paths[route.Pattern]
			if !ok {
				path = router.Path(route.Pattern).Subrouter()
				paths[route.Pattern] = path
			}

			path.Methods(route.Method).Name(route.Name).Handler(route.HandlerFunc)
		}
	}

	return router
}

// NewHandler routes requests to the routers, instrumenting and tracing every request
func NewHandler(routers ...Router) http.Handler {
	return TracingMiddleware(MetricsMiddleware(NewRouter(routers...)))
}
