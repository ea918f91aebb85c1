// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pagination

import (
	"fmt"

	"github.com/tugascript/crudkit/exceptions"
)

const (
	SkipParam  string = "skip"
	LimitParam string = "limit"

	// Message literals are part of the external wire contract, grammar included.
	skipErrorMessage      string = "skip query parameter must be greater or equal to zero"
	limitZeroErrorMessage string = "limit query parameter must be greater then zero"
	limitMaxErrorFormat   string = "limit query parameter must be less then %d"
	notIntegerErrorFormat string = "%s query parameter must be a valid integer"
)

// Params is the normalized pagination result handed back to the router layer.
type Params struct {
	Skip  int  `json:"skip"`
	Limit *int `json:"limit"`
}

// Pagination validates skip/limit query parameters against an optional
// maximum. A nil max leaves the limit unbounded and without a default.
type Pagination struct {
	maxLimit *int
}

func New(maxLimit *int) *Pagination {
	return &Pagination{maxLimit: maxLimit}
}

func WithMaxLimit(maxLimit int) *Pagination {
	return New(&maxLimit)
}

func (p *Pagination) MaxLimit() *int {
	return p.maxLimit
}

// DefaultLimit returns a copy of the configured maximum, which doubles as the
// default limit when the query carries none.
func (p *Pagination) DefaultLimit() *int {
	if p.maxLimit == nil {
		return nil
	}

	limit := *p.maxLimit
	return &limit
}

// Paginate validates and normalizes the skip/limit pair. Failures carry the
// 422 query-validation payload naming the offending parameter.
func (p *Pagination) Paginate(skip int, limit *int) (Params, *exceptions.QueryValidationError) {
	if skip < 0 {
		return Params{}, exceptions.NewQueryValidationError(SkipParam, skipErrorMessage)
	}

	if limit != nil {
		if *limit <= 0 {
			return Params{}, exceptions.NewQueryValidationError(LimitParam, limitZeroErrorMessage)
		}

		if p.maxLimit != nil && *p.maxLimit > 0 && *limit > *p.maxLimit {
			return Params{}, exceptions.NewQueryValidationError(
				LimitParam,
				fmt.Sprintf(limitMaxErrorFormat, *p.maxLimit),
			)
		}
	}

	return Params{Skip: skip, Limit: limit}, nil
}
