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
	"net"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	xForwardedForHeader = "X-Forwarded-For"
	xRealIpHeader       = "X-Real-IP"
)

// health checks and scrapes are logged at debug level
var internalPaths = map[string]bool{livenessPath: true, metricsPath: true, readinessPath: true}

// countingResponseWriter records the status code and the number of body bytes written through it
type countingResponseWriter struct {
	http.ResponseWriter
	bytes      int
	statusCode int
}

func (w *countingResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *countingResponseWriter) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.bytes += n
	return n, err
}

// TracingMiddleware logs one line per served request
func TracingMiddleware(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		start := time.Now()
		writer := &countingResponseWriter{ResponseWriter: responseWriter, statusCode: http.StatusOK}

		inner.ServeHTTP(writer, request)

		entry := log.WithFields(log.Fields{
			"bytes":    writer.bytes,
			"client":   clientAddress(request),
			"duration": time.Since(start),
			"method":   request.Method,
			"path":     request.URL.RequestURI(),
			"status":   writer.statusCode,
		})
		if internalPaths[request.URL.Path] {
			entry.Debug("Served internal request")
		} else {
			entry.Info("Served request")
		}
	})
}

// clientAddress prefers the proxy headers, taking the originating client of a forwarded chain
func clientAddress(request *http.Request) string {
	if address := request.Header.Get(xRealIpHeader); address != "" {
		return address
	}

	if forwarded := request.Header.Get(xForwardedForHeader); forwarded != "" {
		client, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(client)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
