// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taibuivan/melodia/internal/platform/apperr"
	"github.com/taibuivan/melodia/internal/platform/dberr"
)

/*
TestWrap_NotFound verifies that both drivers' "no rows" signals collapse into ErrNotFound.
*/
func TestWrap_NotFound(t *testing.T) {
	for name, err := range map[string]error{
		"pgx":     pgx.ErrNoRows,
		"gorm":    gorm.ErrRecordNotFound,
		"wrapped": errors.Join(errors.New("scan"), pgx.ErrNoRows),
	} {
		t.Run(name, func(t *testing.T) {
			wrapped := dberr.Wrap(err, "get_artist")
			assert.ErrorIs(t, wrapped, dberr.ErrNotFound)
		})
	}
}

/*
TestWrap_Internal verifies that unknown failures become 500s and keep their cause.
*/
func TestWrap_Internal(t *testing.T) {
	cause := errors.New("connection reset")

	err := dberr.Wrap(cause, "list_albums")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, ae.Cause.Error(), "list_albums")
}

/*
TestWrap_Nil verifies that a nil error passes through.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}
