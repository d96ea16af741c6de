// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/melodia/internal/platform/apperr"
	"github.com/taibuivan/melodia/internal/platform/respond"
)

/*
TestList_NilIsEmptyArray verifies that an empty listing is never serialized as null.
*/
func TestList_NilIsEmptyArray(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.List[string](recorder, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}

/*
TestError_AppError verifies that an AppError keeps its status and message.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/singers/999/", nil)

	respond.Error(recorder, request, apperr.NotFoundf("Artist with id %d not found", 999))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Artist with id 999 not found", body.Detail)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestError_Unknown verifies that foreign errors are hidden behind a generic 500.
*/
func TestError_Unknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/singers/", nil)

	respond.Error(recorder, request, errors.New("pq: relation \"artist\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation")
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}
