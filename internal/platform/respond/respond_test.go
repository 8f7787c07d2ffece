// Copyright (c) 2026 Inkwell. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/platform/apperr"
	"github.com/inkwell-dev/inkwell/internal/platform/respond"
)

/*
TestRespond_OK verifies that success payloads are written without an envelope.
*/
func TestRespond_OK(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string]string{"title": "Hello"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Hello", body["title"])
}

/*
TestRespond_NoContent verifies that 204 responses carry no body.
*/
func TestRespond_NoContent(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}

/*
TestRespond_Error_AppError checks that AppErrors map to their HTTP status.
*/
func TestRespond_Error_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)

	respond.Error(recorder, request, apperr.NotFound("Post"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "Post not found", envelope.Error)
}

/*
TestRespond_Error_Unknown checks that unknown errors become opaque 500s.
*/
func TestRespond_Error_Unknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/posts", nil)

	respond.Error(recorder, request, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "INTERNAL_ERROR", envelope.Code)

	// Internal details must never reach the client.
	assert.NotContains(t, envelope.Error, "connection reset")
}

/*
TestRespond_Error_ValidationDetails checks field details serialization.
*/
func TestRespond_Error_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/posts", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "title", Message: "This field is required"},
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "title", envelope.Details[0].Field)
}
