// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"context"
	"log/slog"
	"reflect"
	"strings"

	"github.com/tugascript/crudkit/exceptions"
	"github.com/tugascript/crudkit/internal/utils"
)

const dataSchemaErrorMessage string = "data does not match schema"

// structFieldByName case-folds the lookup so wire names resolve against both
// synthesized fields (Id) and hand-written ones (ID).
func structFieldByName(value reflect.Value, fieldName string) reflect.Value {
	goName := utils.StructFieldName(fieldName)
	return value.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, goName)
	})
}

type UnmarshalBodyOptions struct {
	RequestID  string
	Descriptor Descriptor
	Data       map[string]any
}

// UnmarshalBody builds a value of the descriptor's struct type from a parsed
// request body, coercing each value to its annotated type and filling
// declared defaults for absent fields.
func (s *Schemas) UnmarshalBody(
	ctx context.Context,
	opts UnmarshalBodyOptions,
) (reflect.Value, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, "UnmarshalBody")
	logger.DebugContext(ctx, "Unmarshalling schema body")

	introspector, ok := opts.Descriptor.(StructIntrospector)
	if !ok || introspector.StructType() == nil {
		logger.ErrorContext(ctx, "Descriptor has no struct representation")
		return reflect.Value{}, exceptions.NewServerError()
	}

	fields := opts.Descriptor.Fields()
	if fields == nil {
		logger.ErrorContext(ctx, "Descriptor has no field metadata")
		return reflect.Value{}, exceptions.NewServerError()
	}

	value := reflect.New(introspector.StructType()).Elem()
	for fieldName, fieldValue := range opts.Data {
		field := structFieldByName(value, fieldName)
		if !(field.IsValid() && field.CanSet()) {
			logger.WarnContext(ctx, "Invalid field name", "fieldName", fieldName)
			return reflect.Value{}, exceptions.NewValidationError(dataSchemaErrorMessage)
		}

		schemaField, ok := fields[fieldName]
		if !ok {
			logger.WarnContext(ctx, "Field not found in schema", "fieldName", fieldName)
			return reflect.Value{}, exceptions.NewValidationError(dataSchemaErrorMessage)
		}

		expectedType := schemaField.Annotation
		if reflect.TypeOf(fieldValue) != expectedType {
			convertedVal, err := utils.ConvertType(fieldValue, expectedType)
			if err != nil {
				logger.WarnContext(ctx, "Failed to convert field value", "error", err)
				return reflect.Value{}, exceptions.NewValidationError(dataSchemaErrorMessage)
			}
			field.Set(reflect.ValueOf(convertedVal))
			continue
		}

		field.Set(reflect.ValueOf(fieldValue))
	}

	if serviceErr := s.fillDefaults(ctx, logger, value, fields, opts.Data); serviceErr != nil {
		return reflect.Value{}, serviceErr
	}

	return value, nil
}

func (s *Schemas) fillDefaults(
	ctx context.Context,
	logger *slog.Logger,
	value reflect.Value,
	fields map[string]Field,
	data map[string]any,
) *exceptions.ServiceError {
	for fieldName, schemaField := range fields {
		if schemaField.Default == nil {
			continue
		}
		if _, ok := data[fieldName]; ok {
			continue
		}

		field := structFieldByName(value, fieldName)
		if !(field.IsValid() && field.CanSet()) {
			continue
		}

		defaultValue := schemaField.Default
		if reflect.TypeOf(defaultValue) != schemaField.Annotation {
			convertedVal, err := utils.ConvertType(defaultValue, schemaField.Annotation)
			if err != nil {
				logger.WarnContext(ctx, "Failed to convert default value", "error", err)
				return exceptions.NewValidationError(dataSchemaErrorMessage)
			}
			defaultValue = convertedVal
		}
		field.Set(reflect.ValueOf(defaultValue))
	}

	return nil
}
