// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"io"
	"log/slog"
	"testing"
)

func setRequiredVariables(t *testing.T) {
	t.Helper()

	t.Setenv("PORT", "5000")
	t.Setenv("ENV", "test")
	t.Setenv("DEBUG", "true")
	t.Setenv("MAX_PROCS", "2")
	t.Setenv("SERVICE_NAME", "crudkit-example")
	t.Setenv("PAGINATION_MAX_LIMIT", "")
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewConfig(t *testing.T) {
	t.Run("Should load required variables", func(t *testing.T) {
		setRequiredVariables(t)

		cfg := NewConfig(newTestLogger(), "./.env.test")
		if cfg.Port() != 5000 {
			t.Fatalf("Expected port 5000, got %d", cfg.Port())
		}
		if cfg.Env() != "test" {
			t.Fatalf("Expected env test, got %s", cfg.Env())
		}
		if cfg.MaxProcs() != 2 {
			t.Fatalf("Expected max procs 2, got %d", cfg.MaxProcs())
		}
		if cfg.ServiceName() != "crudkit-example" {
			t.Fatalf("Expected service name crudkit-example, got %s", cfg.ServiceName())
		}
		if cfg.PaginationMaxLimit() != nil {
			t.Fatal("Expected a nil pagination max limit")
		}

		loggerConfig := cfg.LoggerConfig()
		if !loggerConfig.IsDebug() {
			t.Fatal("Expected debug to be enabled")
		}
		if loggerConfig.Env() != "test" {
			t.Fatalf("Expected logger env test, got %s", loggerConfig.Env())
		}
	})

	t.Run("Should parse the pagination max limit when set", func(t *testing.T) {
		setRequiredVariables(t)
		t.Setenv("PAGINATION_MAX_LIMIT", "50")

		cfg := NewConfig(newTestLogger(), "./.env.test")
		if cfg.PaginationMaxLimit() == nil || *cfg.PaginationMaxLimit() != 50 {
			t.Fatalf("Expected pagination max limit 50, got %v", cfg.PaginationMaxLimit())
		}
	})

	t.Run("Should panic when a required variable is missing", func(t *testing.T) {
		setRequiredVariables(t)
		t.Setenv("SERVICE_NAME", "")

		defer func() {
			if recover() == nil {
				t.Fatal("Expected a panic")
			}
		}()
		NewConfig(newTestLogger(), "./.env.test")
	})

	t.Run("Should panic when a numeric variable is not an integer", func(t *testing.T) {
		setRequiredVariables(t)
		t.Setenv("PORT", "not-a-number")

		defer func() {
			if recover() == nil {
				t.Fatal("Expected a panic")
			}
		}()
		NewConfig(newTestLogger(), "./.env.test")
	})

	t.Run("Should panic on non-positive pagination max limits", func(t *testing.T) {
		setRequiredVariables(t)
		t.Setenv("PAGINATION_MAX_LIMIT", "0")

		defer func() {
			if recover() == nil {
				t.Fatal("Expected a panic")
			}
		}()
		NewConfig(newTestLogger(), "./.env.test")
	})
}
