// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tugascript/crudkit/internal/utils"
)

const (
	KindString string = "string"
	KindInt    string = "int"
	KindFloat  string = "float"
	KindBool   string = "bool"
	KindUUID   string = "uuid"
	KindTime   string = "time"
)

// Field is the metadata of a single named, typed schema field.
type Field struct {
	Name       string
	Annotation reflect.Type
	Required   bool
	Default    any
	Validate   string
}

// Descriptor is a read-only structured-type definition. Fields returns the
// field-metadata map, or nil when the variant carries no field metadata.
type Descriptor interface {
	Name() string
	Fields() map[string]Field
}

// StructIntrospector is the general type-introspection fallback for
// descriptors backed by a real Go struct type.
type StructIntrospector interface {
	StructType() reflect.Type
}

// LegacyFieldLister is implemented by the older field-list schema
// representation, which enumerates per-field types without metadata.
type LegacyFieldLister interface {
	FieldList() []LegacyField
}

func KindType(kind string) reflect.Type {
	switch kind {
	case KindString:
		return reflect.TypeOf("")
	case KindInt:
		return reflect.TypeOf(0)
	case KindFloat:
		return reflect.TypeOf(0.0)
	case KindBool:
		return reflect.TypeOf(false)
	case KindUUID:
		return reflect.TypeOf(uuid.UUID{})
	case KindTime:
		return reflect.TypeOf(time.Time{})
	default:
		return reflect.TypeOf(new(interface{})).Elem()
	}
}

type Model struct {
	name       string
	fields     map[string]Field
	structType reflect.Type
}

func NewModel(name string, fields map[string]Field) *Model {
	return &Model{
		name:   name,
		fields: fields,
	}
}

func NewStructModel(name string, fields map[string]Field, structType reflect.Type) *Model {
	return &Model{
		name:       name,
		fields:     fields,
		structType: structType,
	}
}

// ModelOf reflects over a struct value (or pointer to one) and builds a
// descriptor from its exported fields. Wire names come from json tags and
// fall back to the snake_cased field name.
func ModelOf(name string, value any) (*Model, error) {
	structType := reflect.TypeOf(value)
	if structType != nil && structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType == nil || structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("value must be a struct or struct pointer")
	}

	fields := make(map[string]Field, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if !structField.IsExported() {
			continue
		}

		fieldName, omitEmpty := parseJSONTag(structField)
		if fieldName == "-" {
			continue
		}

		fields[fieldName] = Field{
			Name:       fieldName,
			Annotation: structField.Type,
			Required:   !omitEmpty && structField.Type.Kind() != reflect.Ptr,
			Validate:   structField.Tag.Get("validate"),
		}
	}

	if name == "" {
		name = structType.Name()
	}
	return NewStructModel(name, fields, structType), nil
}

func parseJSONTag(structField reflect.StructField) (string, bool) {
	tag := structField.Tag.Get("json")
	if tag == "" {
		return utils.SnakeCase(structField.Name), false
	}

	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = utils.SnakeCase(structField.Name)
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			return name, true
		}
	}
	return name, false
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) Fields() map[string]Field {
	return m.fields
}

func (m *Model) StructType() reflect.Type {
	return m.structType
}

// LegacyField is a bare (name, type) pair from the older schema representation.
type LegacyField struct {
	Name string
	Type reflect.Type
}

type LegacyModel struct {
	name   string
	fields []LegacyField
}

func NewLegacyModel(name string, fields []LegacyField) *LegacyModel {
	return &LegacyModel{
		name:   name,
		fields: fields,
	}
}

func (m *LegacyModel) Name() string {
	return m.name
}

// Fields returns nil: the legacy representation has no field-metadata map.
func (m *LegacyModel) Fields() map[string]Field {
	return nil
}

func (m *LegacyModel) FieldList() []LegacyField {
	return m.fields
}
