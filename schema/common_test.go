// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type testItem struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name" validate:"min=1,max=255"`
	Price float64   `json:"price" validate:"gt=0"`
}

func newTestSchemas() *Schemas {
	return NewSchemas(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator.New(),
	)
}

func newItemModel(t *testing.T) *Model {
	t.Helper()

	model, err := ModelOf("Item", testItem{})
	if err != nil {
		t.Fatal("Failed to build item model", err)
	}
	return model
}
