// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a logger in context, the way
// withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "admit 200",
			method:          http.MethodPost,
			path:            "/api/gate/admit",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/api/gate/admit"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "register 201 no body",
			method:        http.MethodPost,
			path:          "/api/users",
			handlerStatus: http.StatusCreated,
			checkLogContains: []string{
				`"status":201`,
				`"size":0`,
			},
		},
		{
			name:            "replay 409",
			method:          http.MethodPost,
			path:            "/api/gate/admit",
			handlerStatus:   http.StatusConflict,
			handlerResponse: `{"error":"NONCE_REPLAYED"}`,
			checkLogContains: []string{
				`"status":409`,
			},
		},
		{
			name:          "query preserved",
			method:        http.MethodGet,
			path:          "/api/version?verbose=1",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"uri":"/api/version?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
