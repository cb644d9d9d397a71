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

package persistence

import (
	"github.com/prometheus/client_golang/prometheus"
)

const application = "symbol-direct-connect"

var (
	queryAttemptsHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "symbol_direct_connect_query_attempts",
		Buckets: []float64{1, 2, 5, 10, 25, 50},
		Help:    "Number of attempts a document store query polled for before it returned.",
	}, []string{"collection", "operation"})

	queryDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "symbol_direct_connect_query_duration",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		Help:    "Time (in seconds) spent serving document store queries, polling included.",
	}, []string{"collection", "operation"})

	queryErrorsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "symbol_direct_connect_query_errors",
		Help: "Number of document store queries which failed with a database error.",
	}, []string{"collection", "operation"})
)

func init() {
	register := prometheus.WrapRegistererWith(prometheus.Labels{"application": application}, prometheus.DefaultRegisterer)
	register.MustRegister(queryAttemptsHistogram)
	register.MustRegister(queryDurationHistogram)
	register.MustRegister(queryErrorsCounter)
}
