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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/weaveworks/common/middleware"
)

const (
	application       = "symbol-direct-connect"
	httpMetricsPrefix = "symbol_direct_connect_http_"
	metricsPath       = "/metrics"
)

var serverMetrics = newHttpMetrics(
	prometheus.WrapRegistererWith(prometheus.Labels{"application": application}, prometheus.DefaultRegisterer),
)

// httpMetrics holds the vectors instrumented per mux route name. The duration vector carries the status_code and ws
// labels the instrumentation writes.
type httpMetrics struct {
	duration     *prometheus.HistogramVec
	inflight     *prometheus.GaugeVec
	requestSize  *prometheus.HistogramVec
	responseSize *prometheus.HistogramVec
}

func newHttpMetrics(registerer prometheus.Registerer) *httpMetrics {
	// health bodies are tiny, a scrape of the registry is the largest payload served
	payloadBuckets := prometheus.ExponentialBuckets(64, 4, 7)
	routeLabels := []string{"method", "route"}

	metrics := &httpMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    httpMetricsPrefix + "request_duration_seconds",
			Help:    "Time spent serving a request, readiness checks include the database round trip.",
			Buckets: []float64{.005, .025, .1, .5, 1, 5, 10},
		}, append(routeLabels, "status_code", "ws")),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: httpMetricsPrefix + "requests_inflight",
			Help: "Requests currently being served.",
		}, routeLabels),
		requestSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    httpMetricsPrefix + "request_size_bytes",
			Help:    "Size of the received request bodies.",
			Buckets: payloadBuckets,
		}, routeLabels),
		responseSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    httpMetricsPrefix + "response_size_bytes",
			Help:    "Size of the sent response bodies.",
			Buckets: payloadBuckets,
		}, routeLabels),
	}
	registerer.MustRegister(metrics.duration, metrics.inflight, metrics.requestSize, metrics.responseSize)
	return metrics
}

func (m *httpMetrics) instrument(router *mux.Router) http.Handler {
	return middleware.Instrument{
		Duration:         m.duration,
		InflightRequests: m.inflight,
		RequestBodySize:  m.requestSize,
		ResponseBodySize: m.responseSize,
		RouteMatcher:     router,
	}.Wrap(router)
}

type metricsController struct {
	handler http.Handler
}

// NewMetricsController serves the default prometheus registry, which also holds the document store query metrics
func NewMetricsController() Router {
	return &metricsController{
		handler: promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{ErrorLog: log.StandardLogger()}),
	}
}

func (c *metricsController) Routes() Routes {
	return Routes{{Name: "metrics", Method: http.MethodGet, Pattern: metricsPath, HandlerFunc: c.handler.ServeHTTP}}
}

// MetricsMiddleware instruments the requests served by router, labelled by the name of the matched route
func MetricsMiddleware(router *mux.Router) http.Handler {
	return serverMetrics.instrument(router)
}
