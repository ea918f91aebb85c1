// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tugascript/crudkit/internal/utils"
)

// Schemas bundles the schema operations that need logging and struct-tag
// validation, mirroring how a router layer consumes them per request.
type Schemas struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func NewSchemas(logger *slog.Logger, validate *validator.Validate) *Schemas {
	return &Schemas{
		logger:   logger,
		validate: validate,
	}
}

func (s *Schemas) buildLogger(requestID, method string) *slog.Logger {
	return utils.BuildLogger(s.logger, utils.LoggerOptions{
		Location:  utils.SchemaLogLayer,
		Method:    method,
		RequestID: requestID,
	})
}
