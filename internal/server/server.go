// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tugascript/crudkit/config"
	"github.com/tugascript/crudkit/pagination"
	"github.com/tugascript/crudkit/schema"
)

// Item is the demo resource the example routes are generated around.
type Item struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name" validate:"min=1,max=255"`
	Price float64   `json:"price" validate:"gt=0"`
}

type FiberServer struct {
	*fiber.App

	logger       *slog.Logger
	validate     *validator.Validate
	schemas      *schema.Schemas
	pagination   *pagination.Pagination
	itemModel    *schema.Model
	createSchema *schema.Model

	mu    sync.RWMutex
	items []Item
}

func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) *FiberServer {
	validate := validator.New()

	logger.InfoContext(ctx, "Building item schemas...")
	itemModel, err := schema.ModelOf("Item", Item{})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build item model", "error", err)
		panic(err)
	}
	createSchema, err := schema.CreateSchemaDefault(itemModel)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to derive create schema", "error", err)
		panic(err)
	}
	logger.InfoContext(ctx, "Finished building item schemas")

	app := fiber.New(fiber.Config{
		AppName: cfg.ServiceName(),
	})
	app.Use(requestid.New())

	return &FiberServer{
		App:          app,
		logger:       logger,
		validate:     validate,
		schemas:      schema.NewSchemas(logger, validate),
		pagination:   pagination.New(cfg.PaginationMaxLimit()),
		itemModel:    itemModel,
		createSchema: createSchema,
		items:        make([]Item, 0),
	}
}
