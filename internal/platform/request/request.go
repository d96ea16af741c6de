// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, ensuring
consistent error handling and type safety.
*/
package requestutil

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/melodia/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID retrieves a named URL parameter and parses it as a positive integer identifier.

The upper bound matches the PostgreSQL integer column type.

Returns:
  - int: The parsed identifier
  - error: apperr VALIDATION_ERROR naming the parameter if it is not a positive integer
*/
func ID(request *http.Request, name string) (int, error) {
	raw := Param(request, name)
	value, parseErr := strconv.Atoi(raw)

	validator := &validate.Validator{}
	validator.Custom(name, parseErr != nil, "Must be an integer")
	if parseErr == nil {
		validator.Range(name, value, 1, math.MaxInt32)
	}

	if err := validator.Err(); err != nil {
		return 0, err
	}
	return value, nil
}
