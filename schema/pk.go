// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"reflect"
	"strings"

	"github.com/tugascript/crudkit/internal/utils"
)

const DefaultPKField string = "id"

var intType = reflect.TypeOf(0)

// PKType resolves the declared type of the primary key field. Resolution
// checks the field-metadata map first, then the descriptor's underlying
// struct type, and degrades to int when the field cannot be found.
func PKType(d Descriptor, pkField string) reflect.Type {
	if pkField == "" {
		pkField = DefaultPKField
	}

	if fields := d.Fields(); fields != nil {
		if field, ok := fields[pkField]; ok && field.Annotation != nil {
			return field.Annotation
		}
	}

	if introspector, ok := d.(StructIntrospector); ok {
		if structType := introspector.StructType(); structType != nil {
			// Case-fold the lookup so "id" finds both ID and Id fields.
			goName := utils.StructFieldName(pkField)
			structField, ok := structType.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, goName)
			})
			if ok {
				return structField.Type
			}
		}
	}

	return intType
}
