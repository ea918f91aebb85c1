// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/tugascript/crudkit/exceptions"
)

const (
	snakeCaseErrorMessage    string = "field names must be snake_case and between 1 and 50 characters"
	fieldKindErrorMessage    string = "field type must be one of: string, int, float, bool, uuid, time"
	defaultValueErrorMessage string = "default value does not match the field type"
)

var snakeCaseRegexCompiled = regexp.MustCompile(`^[a-z]+(_[a-z\d]+)*$`)

func isValidSchemaFieldName(s string) bool {
	length := len(s)
	return length > 0 && length < 51 && snakeCaseRegexCompiled.MatchString(s)
}

// FieldDefinition is the wire form of a single schema field definition.
type FieldDefinition struct {
	Type     string `json:"type" validate:"required,oneof=string int float bool uuid time"`
	Required bool   `json:"required"`
	Unique   bool   `json:"unique"`
	Default  any    `json:"default,omitempty"`
	Validate string `json:"validate,omitempty"`
}

func validateDefaultValue(definition FieldDefinition) error {
	// If no default value is set, it's valid
	if definition.Default == nil {
		return nil
	}

	switch definition.Type {
	case KindString:
		if _, ok := definition.Default.(string); !ok {
			return fmt.Errorf("default value must be a string")
		}
	case KindInt:
		// Check for float64 since JSON unmarshaling typically converts numbers to float64
		if f, ok := definition.Default.(float64); ok {
			if f != float64(int(f)) {
				return fmt.Errorf("default value must be an integer")
			}
		} else if _, ok := definition.Default.(int); !ok {
			return fmt.Errorf("default value must be an integer")
		}
	case KindFloat:
		if _, ok := definition.Default.(float64); !ok {
			if _, ok := definition.Default.(int); !ok {
				return fmt.Errorf("default value must be a float")
			}
		}
	case KindBool:
		if _, ok := definition.Default.(bool); !ok {
			return fmt.Errorf("default value must be a boolean")
		}
	case KindUUID:
		s, ok := definition.Default.(string)
		if !ok {
			return fmt.Errorf("default value must be a uuid string")
		}
		if _, err := uuid.Parse(s); err != nil {
			return fmt.Errorf("default value must be a uuid string")
		}
	case KindTime:
		s, ok := definition.Default.(string)
		if !ok {
			return fmt.Errorf("default value must be an RFC3339 string")
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("default value must be an RFC3339 string")
		}
	default:
		return fmt.Errorf("unknown field type: %s", definition.Type)
	}

	return nil
}

// ValidateFieldDefinitions checks a field-definition map and returns the
// corresponding field-metadata map, or a 422 payload listing every offending
// definition.
func (s *Schemas) ValidateFieldDefinitions(
	ctx context.Context,
	requestID string,
	body map[string]FieldDefinition,
) (map[string]Field, *exceptions.QueryValidationError) {
	logger := s.buildLogger(requestID, "ValidateFieldDefinitions")
	logger.DebugContext(ctx, "Validating field definitions")

	if len(body) == 0 {
		return nil, &exceptions.QueryValidationError{
			Status: exceptions.StatusUnprocessableEntity,
			Detail: []exceptions.QueryFieldError{},
		}
	}

	fields := make(map[string]Field, len(body))
	detail := make([]exceptions.QueryFieldError, 0)

	for fieldName, definition := range body {
		if !isValidSchemaFieldName(fieldName) {
			detail = append(detail, exceptions.QueryFieldError{
				Loc:  []string{exceptions.LocationBody, fieldName},
				Msg:  snakeCaseErrorMessage,
				Type: "value_error",
			})
		}
		if err := s.validate.StructCtx(ctx, definition); err != nil {
			detail = append(detail, exceptions.QueryFieldError{
				Loc:  []string{exceptions.LocationBody, fieldName + ".type"},
				Msg:  fieldKindErrorMessage,
				Type: "value_error",
			})
		}
		if err := validateDefaultValue(definition); err != nil {
			detail = append(detail, exceptions.QueryFieldError{
				Loc:  []string{exceptions.LocationBody, fieldName + ".default"},
				Msg:  defaultValueErrorMessage,
				Type: "value_error",
			})
		}

		if len(detail) == 0 {
			fields[fieldName] = Field{
				Name:       fieldName,
				Annotation: KindType(definition.Type),
				Required:   definition.Required,
				Default:    definition.Default,
				Validate:   definition.Validate,
			}
		}
	}

	if len(detail) > 0 {
		logger.WarnContext(ctx, "Field definitions failed validation", "errors", len(detail))
		return nil, &exceptions.QueryValidationError{
			Status: exceptions.StatusUnprocessableEntity,
			Detail: detail,
		}
	}

	return fields, nil
}
