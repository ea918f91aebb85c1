// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/tugascript/crudkit/internal/utils"
)

const DefaultCreateSuffix string = "Create"

// Convention selects the model-construction call shape. It is resolved once
// during host initialization instead of probing construction failures at
// call time.
type Convention int

const (
	// ConventionFields builds a model from a name and a field-metadata map.
	ConventionFields Convention = iota
	// ConventionNamed is the older call shape, which requires an explicitly
	// named model argument.
	ConventionNamed
)

var buildConvention = ConventionFields

// SetBuildConvention switches the construction call shape. Hosts embedding a
// legacy schema representation set ConventionNamed once at startup.
func SetBuildConvention(convention Convention) {
	buildConvention = convention
}

// CreateSchema derives a new descriptor from d containing every field except
// the primary key, each marked required with its default cleared. The result
// is named <OriginalName><suffix>. Field order is not preserved.
func CreateSchema(d Descriptor, pkField, suffix string) (*Model, error) {
	if pkField == "" {
		pkField = DefaultPKField
	}
	if suffix == "" {
		suffix = DefaultCreateSuffix
	}

	fields := make(map[string]Field)
	if src := d.Fields(); src != nil {
		for fieldName, field := range src {
			if fieldName == pkField {
				continue
			}

			field.Required = true
			field.Default = nil
			fields[fieldName] = field
		}
	} else if legacy, ok := d.(LegacyFieldLister); ok {
		for _, legacyField := range legacy.FieldList() {
			if legacyField.Name == pkField {
				continue
			}

			fields[legacyField.Name] = Field{
				Name:       legacyField.Name,
				Annotation: legacyField.Type,
				Required:   true,
			}
		}
	}

	return buildModel(d.Name()+suffix, fields, buildConvention)
}

// CreateSchemaDefault derives a create schema with the "id" primary key and
// the "Create" naming suffix.
func CreateSchemaDefault(d Descriptor) (*Model, error) {
	return CreateSchema(d, DefaultPKField, DefaultCreateSuffix)
}

func buildModel(name string, fields map[string]Field, convention Convention) (*Model, error) {
	if convention == ConventionNamed && name == "" {
		return nil, fmt.Errorf("model name must be provided")
	}

	fieldNames := make([]string, 0, len(fields))
	for fieldName := range fields {
		fieldNames = append(fieldNames, fieldName)
	}
	sort.Strings(fieldNames)

	structFields := make([]reflect.StructField, 0, len(fields))
	seen := make(map[string]string, len(fields))
	for _, fieldName := range fieldNames {
		field := fields[fieldName]
		goName := utils.StructFieldName(fieldName)
		if !isExportedIdentifier(goName) {
			return nil, fmt.Errorf("field %q does not map to an exported struct field", fieldName)
		}
		if prev, ok := seen[goName]; ok {
			return nil, fmt.Errorf("fields %q and %q collide on struct field %s", prev, fieldName, goName)
		}
		seen[goName] = fieldName

		annotation := field.Annotation
		if annotation == nil {
			annotation = KindType("")
		}

		structFields = append(structFields, reflect.StructField{
			Name: goName,
			Type: annotation,
			Tag:  buildFieldTag(fieldName, field),
		})
	}

	return NewStructModel(name, fields, reflect.StructOf(structFields)), nil
}

func buildFieldTag(fieldName string, field Field) reflect.StructTag {
	validations := make([]string, 0, 2)
	if field.Required && !strings.Contains(field.Validate, "required") {
		validations = append(validations, "required")
	}
	if field.Validate != "" {
		validations = append(validations, field.Validate)
	}

	if len(validations) == 0 {
		return reflect.StructTag(fmt.Sprintf(`json:%q`, fieldName))
	}
	return reflect.StructTag(fmt.Sprintf(
		`json:%q validate:%q`,
		fieldName,
		strings.Join(validations, ","),
	))
}

func isExportedIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i, char := range s {
		if i == 0 {
			if !unicode.IsUpper(char) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}
