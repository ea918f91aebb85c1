// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pagination

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tugascript/crudkit/exceptions"
	"github.com/tugascript/crudkit/internal/utils"
)

// LocalsKey is where the middleware stores the validated Params.
const LocalsKey string = "pagination"

func getRequestID(ctx *fiber.Ctx) string {
	return ctx.Get("requestid", uuid.NewString())
}

func queryValidationErrorResponse(
	logger *slog.Logger,
	ctx *fiber.Ctx,
	err *exceptions.QueryValidationError,
) error {
	logger.WarnContext(ctx.UserContext(), "Failed to validate query parameters", "error", err)
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Response: %s %s", ctx.Method(), ctx.Path()),
		"status", err.Status,
	)
	return ctx.Status(err.Status).JSON(err)
}

func queryInt(ctx *fiber.Ctx, param string) (*int, *exceptions.QueryValidationError) {
	raw := ctx.Query(param)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, exceptions.NewQueryValidationError(
			param,
			fmt.Sprintf(notIntegerErrorFormat, param),
		)
	}

	return &value, nil
}

// Middleware is the injectable form of the pagination dependency: it parses
// the skip/limit query parameters, validates them and stores the normalized
// Params under LocalsKey for the route handler.
func (p *Pagination) Middleware(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestLogger := utils.BuildLogger(logger, utils.LoggerOptions{
			Location:  utils.PaginationLogLayer,
			Method:    "Middleware",
			RequestID: getRequestID(ctx),
		})

		skip, queryErr := queryInt(ctx, SkipParam)
		if queryErr != nil {
			return queryValidationErrorResponse(requestLogger, ctx, queryErr)
		}
		if skip == nil {
			zero := 0
			skip = &zero
		}

		limit, queryErr := queryInt(ctx, LimitParam)
		if queryErr != nil {
			return queryValidationErrorResponse(requestLogger, ctx, queryErr)
		}
		if limit == nil {
			limit = p.DefaultLimit()
		}

		params, validationErr := p.Paginate(*skip, limit)
		if validationErr != nil {
			return queryValidationErrorResponse(requestLogger, ctx, validationErr)
		}

		ctx.Locals(LocalsKey, params)
		return ctx.Next()
	}
}

// FromLocals retrieves the Params stored by Middleware.
func FromLocals(ctx *fiber.Ctx) (Params, bool) {
	params, ok := ctx.Locals(LocalsKey).(Params)
	return params, ok
}
