// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

const (
	StatusUnprocessableEntity int = 422

	LocationQuery  string = "query"
	LocationBody   string = "body"
	LocationParams string = "params"

	// QueryErrorKindInteger is the wire error-kind tag carried by every query
	// validation failure, bound-check failures included. Existing clients match
	// on the literal string, so it is never derived from the failure reason.
	QueryErrorKindInteger string = "type_error.integer"

	queryValidationMessage string = "Invalid query parameters"
)

type QueryFieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type QueryValidationError struct {
	Status int               `json:"-"`
	Detail []QueryFieldError `json:"detail"`
}

func (e *QueryValidationError) Error() string {
	if len(e.Detail) == 0 {
		return queryValidationMessage
	}

	return e.Detail[0].Msg
}

// Field returns the offending parameter name of the first detail entry.
func (e *QueryValidationError) Field() string {
	if len(e.Detail) == 0 || len(e.Detail[0].Loc) < 2 {
		return ""
	}

	return e.Detail[0].Loc[1]
}

func NewQueryValidationError(field, msg string) *QueryValidationError {
	return &QueryValidationError{
		Status: StatusUnprocessableEntity,
		Detail: []QueryFieldError{
			{
				Loc:  []string{LocationQuery, field},
				Msg:  msg,
				Type: QueryErrorKindInteger,
			},
		},
	}
}
