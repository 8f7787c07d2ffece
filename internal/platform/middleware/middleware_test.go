// Copyright (c) 2026 Inkwell. All rights reserved.

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-dev/inkwell/internal/platform/constants"
	"github.com/inkwell-dev/inkwell/internal/platform/ctxutil"
	"github.com/inkwell-dev/inkwell/internal/platform/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

/*
TestRequestID_Generated verifies that a missing request ID is generated
and exposed both in the context and the response header.
*/
func TestRequestID_Generated(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/posts", nil)

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestRequestID_Preserved verifies that a client-provided ID is passed through.
*/
func TestRequestID_Preserved(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/posts", nil)
	request.Header.Set(constants.HeaderXRequestID, "client-supplied-id")

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	assert.Equal(t, "client-supplied-id", recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestPanicRecovery catches a downstream panic and returns a safe 500.
*/
func TestPanicRecovery(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/posts", nil)

	middleware.PanicRecovery(discardLogger())(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "boom")
}

type corsConfig struct {
	dev     bool
	origins []string
}

func (c corsConfig) IsDevelopment() bool      { return c.dev }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

/*
TestCORS_Preflight verifies OPTIONS short-circuits with 204 in development.
*/
func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTeapot) // must never be reached
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	request.Header.Set(constants.HeaderOrigin, "http://localhost:3000")

	middleware.CORS(corsConfig{dev: true})(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_ProductionOriginCheck verifies the strict allow-list outside development.
*/
func TestCORS_ProductionOriginCheck(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{"listed_origin", "https://blog.example.com", true},
		{"unlisted_origin", "https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/posts", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)

			cfg := corsConfig{origins: []string{"https://blog.example.com"}}
			middleware.CORS(cfg)(next).ServeHTTP(recorder, request)

			got := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
