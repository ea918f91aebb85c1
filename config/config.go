// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var variables = [5]string{
	"PORT",
	"ENV",
	"DEBUG",
	"MAX_PROCS",
	"SERVICE_NAME",
}

var optionalVariables = [1]string{
	"PAGINATION_MAX_LIMIT",
}

var numerics = [2]string{
	"PORT",
	"MAX_PROCS",
}

type Config struct {
	port               int64
	env                string
	maxProcs           int64
	serviceName        string
	paginationMaxLimit *int
	loggerConfig       LoggerConfig
}

func (c *Config) Port() int64 {
	return c.port
}

func (c *Config) Env() string {
	return c.env
}

func (c *Config) MaxProcs() int64 {
	return c.maxProcs
}

func (c *Config) ServiceName() string {
	return c.serviceName
}

// PaginationMaxLimit is nil when PAGINATION_MAX_LIMIT is unset, leaving the
// pagination dependency unbounded.
func (c *Config) PaginationMaxLimit() *int {
	return c.paginationMaxLimit
}

func (c *Config) LoggerConfig() LoggerConfig {
	return c.loggerConfig
}

func NewConfig(logger *slog.Logger, envPath string) Config {
	err := godotenv.Load(envPath)
	if err != nil {
		logger.Error("Error loading .env file")
	}

	variablesMap := make(map[string]string)
	for _, variable := range variables {
		value := os.Getenv(variable)
		if value == "" {
			logger.Error(variable + " is not set")
			panic(variable + " is not set")
		}
		variablesMap[variable] = value
	}

	for _, variable := range optionalVariables {
		value := os.Getenv(variable)
		variablesMap[variable] = value
	}

	intMap := make(map[string]int64)
	for _, numeric := range numerics {
		value, err := strconv.ParseInt(variablesMap[numeric], 10, 0)
		if err != nil {
			logger.Error(numeric + " is not an integer")
			panic(numeric + " is not an integer")
		}
		intMap[numeric] = value
	}

	var paginationMaxLimit *int
	if raw := variablesMap["PAGINATION_MAX_LIMIT"]; raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			logger.Error("PAGINATION_MAX_LIMIT is not a positive integer")
			panic("PAGINATION_MAX_LIMIT is not a positive integer")
		}
		paginationMaxLimit = &value
	}

	return Config{
		port:               intMap["PORT"],
		env:                variablesMap["ENV"],
		maxProcs:           intMap["MAX_PROCS"],
		serviceName:        variablesMap["SERVICE_NAME"],
		paginationMaxLimit: paginationMaxLimit,
		loggerConfig: NewLoggerConfig(
			strings.ToLower(variablesMap["DEBUG"]) == "true",
			variablesMap["ENV"],
			variablesMap["SERVICE_NAME"],
		),
	}
}
