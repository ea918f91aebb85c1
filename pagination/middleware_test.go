// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pagination

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/crudkit/exceptions"
)

func newTestApp(paging *Pagination) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New()
	app.Get("/items", paging.Middleware(logger), func(ctx *fiber.Ctx) error {
		params, ok := FromLocals(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		return ctx.JSON(params)
	})
	return app
}

func performRequest(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal("Failed to perform request", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Fatal("Failed to close response body", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("Failed to read response body", err)
	}
	return resp.StatusCode, body
}

func decodeQueryError(t *testing.T, body []byte) exceptions.QueryValidationError {
	t.Helper()

	var payload exceptions.QueryValidationError
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatal("Failed to decode error payload", err)
	}
	if len(payload.Detail) != 1 {
		t.Fatalf("Expected a single detail entry, got %d", len(payload.Detail))
	}
	return payload
}

func TestMiddlewareValidation(t *testing.T) {
	testCases := []struct {
		Name    string
		Paging  *Pagination
		Path    string
		ExpLoc  [2]string
		ExpMsg  string
		ExpKind string
	}{
		{
			Name:    "Should return 422 when skip is negative",
			Paging:  New(nil),
			Path:    "/items?skip=-1",
			ExpLoc:  [2]string{"query", "skip"},
			ExpMsg:  "skip query parameter must be greater or equal to zero",
			ExpKind: "type_error.integer",
		},
		{
			Name:    "Should return 422 when limit is zero",
			Paging:  New(nil),
			Path:    "/items?limit=0",
			ExpLoc:  [2]string{"query", "limit"},
			ExpMsg:  "limit query parameter must be greater then zero",
			ExpKind: "type_error.integer",
		},
		{
			Name:    "Should return 422 when limit exceeds the maximum",
			Paging:  WithMaxLimit(10),
			Path:    "/items?limit=50",
			ExpLoc:  [2]string{"query", "limit"},
			ExpMsg:  "limit query parameter must be less then 10",
			ExpKind: "type_error.integer",
		},
		{
			Name:    "Should return 422 when skip is not an integer",
			Paging:  New(nil),
			Path:    "/items?skip=abc",
			ExpLoc:  [2]string{"query", "skip"},
			ExpMsg:  "skip query parameter must be a valid integer",
			ExpKind: "type_error.integer",
		},
		{
			Name:    "Should return 422 when limit is not an integer",
			Paging:  WithMaxLimit(10),
			Path:    "/items?limit=ten",
			ExpLoc:  [2]string{"query", "limit"},
			ExpMsg:  "limit query parameter must be a valid integer",
			ExpKind: "type_error.integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			status, body := performRequest(t, newTestApp(tc.Paging), tc.Path)

			if status != 422 {
				t.Fatalf("Expected status 422, got %d", status)
			}

			payload := decodeQueryError(t, body)
			detail := payload.Detail[0]
			if len(detail.Loc) != 2 || detail.Loc[0] != tc.ExpLoc[0] || detail.Loc[1] != tc.ExpLoc[1] {
				t.Fatalf("Expected loc %v, got %v", tc.ExpLoc, detail.Loc)
			}
			if detail.Msg != tc.ExpMsg {
				t.Fatalf("Expected msg %q, got %q", tc.ExpMsg, detail.Msg)
			}
			if detail.Type != tc.ExpKind {
				t.Fatalf("Expected type %q, got %q", tc.ExpKind, detail.Type)
			}
		})
	}
}

func TestMiddlewareSuccess(t *testing.T) {
	type paramsBody struct {
		Skip  int  `json:"skip"`
		Limit *int `json:"limit"`
	}

	testCases := []struct {
		Name     string
		Paging   *Pagination
		Path     string
		ExpSkip  int
		ExpLimit *int
	}{
		{
			Name:     "Should pass validated params to the handler",
			Paging:   WithMaxLimit(10),
			Path:     "/items?skip=5&limit=10",
			ExpSkip:  5,
			ExpLimit: intPtr(10),
		},
		{
			Name:     "Should default the limit to the configured maximum",
			Paging:   WithMaxLimit(25),
			Path:     "/items",
			ExpSkip:  0,
			ExpLimit: intPtr(25),
		},
		{
			Name:     "Should leave the limit absent when no maximum is configured",
			Paging:   New(nil),
			Path:     "/items",
			ExpSkip:  0,
			ExpLimit: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			status, body := performRequest(t, newTestApp(tc.Paging), tc.Path)

			if status != 200 {
				t.Fatalf("Expected status 200, got %d: %s", status, body)
			}

			var params paramsBody
			if err := json.Unmarshal(body, &params); err != nil {
				t.Fatal("Failed to decode params", err)
			}
			if params.Skip != tc.ExpSkip {
				t.Fatalf("Expected skip %d, got %d", tc.ExpSkip, params.Skip)
			}
			if (params.Limit == nil) != (tc.ExpLimit == nil) {
				t.Fatalf("Expected limit %v, got %v", tc.ExpLimit, params.Limit)
			}
			if params.Limit != nil && *params.Limit != *tc.ExpLimit {
				t.Fatalf("Expected limit %d, got %d", *tc.ExpLimit, *params.Limit)
			}
		})
	}
}
