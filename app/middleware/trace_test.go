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
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	clientIp    = "10.0.0.100"
	defaultIp   = "192.0.2.1"
	defaultPath = "/transactions/confirmed"
	levelDebug  = "level=debug"
	levelInfo   = "level=info"
)

func TestTrace(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		path     string
		messages []string
	}{
		{
			name:     "request",
			path:     defaultPath,
			messages: []string{levelInfo, "method=GET", "path=" + defaultPath, "status=200", "client=" + defaultIp, "bytes=16"},
		},
		{
			name:     "query string",
			path:     defaultPath + "?limit=10",
			messages: []string{levelInfo, "path=\"" + defaultPath + "?limit=10\""},
		},
		{
			name:     "liveness",
			path:     livenessPath,
			messages: []string{levelDebug, "path=" + livenessPath, "client=" + defaultIp},
		},
		{
			name:     "readiness",
			path:     readinessPath,
			messages: []string{levelDebug, "path=" + readinessPath},
		},
		{
			name:     "metrics",
			path:     metricsPath,
			messages: []string{levelDebug, "path=" + metricsPath},
		},
		{
			name:     "not internal",
			path:     metricsPath + "s",
			messages: []string{levelInfo, "path=/metricss", "status=200"},
		},
		{
			name:     "real ip",
			headers:  map[string]string{xRealIpHeader: clientIp, xForwardedForHeader: "10.0.0.1"},
			path:     defaultPath,
			messages: []string{"client=" + clientIp},
		},
		{
			name:     "forwarded for",
			headers:  map[string]string{xForwardedForHeader: clientIp},
			path:     defaultPath,
			messages: []string{"client=" + clientIp},
		},
		{
			name:     "forwarded chain",
			headers:  map[string]string{xForwardedForHeader: clientIp + ", 10.0.0.1, 10.0.0.2"},
			path:     defaultPath,
			messages: []string{"client=" + clientIp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			buf := bytes.NewBuffer(nil)
			level := log.GetLevel()
			log.SetOutput(buf)
			log.SetLevel(log.DebugLevel)
			t.Cleanup(func() {
				log.SetOutput(os.Stdout)
				log.SetLevel(level)
			})

			handler := TracingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `{"key": "value"}`)
			}))
			req := httptest.NewRequest("GET", "http://localhost"+tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			// when
			handler.ServeHTTP(httptest.NewRecorder(), req)

			// then
			message := strings.ReplaceAll(buf.String(), "\n", "")
			for _, content := range tt.messages {
				require.Contains(t, message, content)
			}
		})
	}
}

func TestCountingResponseWriter(t *testing.T) {
	recorder := httptest.NewRecorder()
	writer := &countingResponseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}

	writer.WriteHeader(http.StatusTeapot)
	io.WriteString(writer, "first ")
	io.WriteString(writer, "second")

	require.Equal(t, http.StatusTeapot, writer.statusCode)
	require.Equal(t, 12, writer.bytes)
	require.Equal(t, http.StatusTeapot, recorder.Code)
	require.Equal(t, "first second", recorder.Body.String())
}
