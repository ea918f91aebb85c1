// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tugascript/crudkit/exceptions"
	"github.com/tugascript/crudkit/pagination"
	"github.com/tugascript/crudkit/schema"
)

func (s *FiberServer) RegisterRoutes() {
	s.Get("/health", s.HealthCheck)
	s.Get("/items", s.pagination.Middleware(s.logger), s.ListItems)
	s.Post("/items", s.CreateItem)
}

func (s *FiberServer) HealthCheck(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusOK)
}

type ListItemsResponse struct {
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit *int   `json:"limit"`
	Items []Item `json:"items"`
}

func (s *FiberServer) ListItems(ctx *fiber.Ctx) error {
	params, ok := pagination.FromLocals(ctx)
	if !ok {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			exceptions.NewErrorResponse(exceptions.NewServerError()),
		)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.items)
	start := params.Skip
	if start > total {
		start = total
	}
	end := total
	if params.Limit != nil && start+*params.Limit < end {
		end = start + *params.Limit
	}

	items := make([]Item, end-start)
	copy(items, s.items[start:end])

	return ctx.JSON(ListItemsResponse{
		Total: total,
		Skip:  params.Skip,
		Limit: params.Limit,
		Items: items,
	})
}

func (s *FiberServer) CreateItem(ctx *fiber.Ctx) error {
	requestID := ctx.Get("requestid", uuid.NewString())

	body := make(map[string]any)
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(exceptions.StatusUnprocessableEntity).JSON(&exceptions.QueryValidationError{
			Status: exceptions.StatusUnprocessableEntity,
			Detail: []exceptions.QueryFieldError{
				{
					Loc:  []string{exceptions.LocationBody},
					Msg:  "invalid request body",
					Type: "value_error",
				},
			},
		})
	}

	value, serviceErr := s.schemas.UnmarshalBody(ctx.UserContext(), schema.UnmarshalBodyOptions{
		RequestID:  requestID,
		Descriptor: s.createSchema,
		Data:       body,
	})
	if serviceErr != nil {
		return ctx.
			Status(exceptions.NewRequestErrorStatus(serviceErr.Code)).
			JSON(exceptions.NewErrorResponse(serviceErr))
	}

	if err := s.validate.StructCtx(ctx.UserContext(), value.Interface()); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(
				exceptions.NewErrorResponse(exceptions.NewServerError()),
			)
		}

		validationErr := exceptions.QueryValidationErrorFromValidator(errs, exceptions.LocationBody)
		return ctx.Status(validationErr.Status).JSON(validationErr)
	}

	item := Item{
		ID:    uuid.New(),
		Name:  value.FieldByName("Name").String(),
		Price: value.FieldByName("Price").Float(),
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return ctx.Status(fiber.StatusCreated).JSON(item)
}
