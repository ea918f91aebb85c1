// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"reflect"
	"strings"
	"testing"
)

func TestCreateSchema(t *testing.T) {
	t.Run("Should strip the primary key and require every field", func(t *testing.T) {
		itemModel := newItemModel(t)

		created, err := CreateSchemaDefault(itemModel)
		if err != nil {
			t.Fatal("Failed to create schema", err)
		}

		if created.Name() != "ItemCreate" {
			t.Fatalf("Expected name ItemCreate, got %q", created.Name())
		}

		fields := created.Fields()
		if len(fields) != 2 {
			t.Fatalf("Expected 2 fields, got %d", len(fields))
		}
		if _, ok := fields["id"]; ok {
			t.Fatal("Primary key field must be excluded")
		}
		for fieldName, field := range fields {
			original, ok := itemModel.Fields()[fieldName]
			if !ok {
				t.Fatalf("Unexpected field %q", fieldName)
			}
			if field.Annotation != original.Annotation {
				t.Fatalf("Field %q annotation changed", fieldName)
			}
			if !field.Required {
				t.Fatalf("Field %q must be required", fieldName)
			}
			if field.Default != nil {
				t.Fatalf("Field %q default must be cleared", fieldName)
			}
		}
	})

	t.Run("Should synthesize a struct type with json and validate tags", func(t *testing.T) {
		created, err := CreateSchemaDefault(newItemModel(t))
		if err != nil {
			t.Fatal("Failed to create schema", err)
		}

		structType := created.StructType()
		if structType == nil || structType.Kind() != reflect.Struct {
			t.Fatal("Expected a synthesized struct type")
		}

		nameField, ok := structType.FieldByName("Name")
		if !ok {
			t.Fatal("Expected a Name struct field")
		}
		if nameField.Tag.Get("json") != "name" {
			t.Fatalf("Expected json tag name, got %q", nameField.Tag.Get("json"))
		}
		if !strings.Contains(nameField.Tag.Get("validate"), "required") {
			t.Fatalf("Expected required validation, got %q", nameField.Tag.Get("validate"))
		}

		if _, ok := structType.FieldByName("Id"); ok {
			t.Fatal("Primary key must not appear on the struct type")
		}
	})

	t.Run("Should honor a custom primary key and suffix", func(t *testing.T) {
		created, err := CreateSchema(newItemModel(t), "name", "Update")
		if err != nil {
			t.Fatal("Failed to create schema", err)
		}

		if created.Name() != "ItemUpdate" {
			t.Fatalf("Expected name ItemUpdate, got %q", created.Name())
		}
		if _, ok := created.Fields()["name"]; ok {
			t.Fatal("Excluded field must not be present")
		}
		if _, ok := created.Fields()["id"]; !ok {
			t.Fatal("Non-excluded fields must be preserved")
		}
	})

	t.Run("Should enumerate legacy field lists", func(t *testing.T) {
		legacy := NewLegacyModel("Post", []LegacyField{
			{Name: "id", Type: reflect.TypeOf(0)},
			{Name: "title", Type: reflect.TypeOf("")},
			{Name: "views", Type: reflect.TypeOf(0)},
		})

		created, err := CreateSchemaDefault(legacy)
		if err != nil {
			t.Fatal("Failed to create schema", err)
		}

		if created.Name() != "PostCreate" {
			t.Fatalf("Expected name PostCreate, got %q", created.Name())
		}

		fields := created.Fields()
		if len(fields) != 2 {
			t.Fatalf("Expected 2 fields, got %d", len(fields))
		}
		for _, fieldName := range []string{"title", "views"} {
			field, ok := fields[fieldName]
			if !ok {
				t.Fatalf("Expected field %q", fieldName)
			}
			if !field.Required {
				t.Fatalf("Field %q must be required", fieldName)
			}
		}
	})

	t.Run("Should build an empty schema from a bare descriptor", func(t *testing.T) {
		created, err := CreateSchemaDefault(NewModel("Empty", nil))
		if err != nil {
			t.Fatal("Failed to create schema", err)
		}
		if len(created.Fields()) != 0 {
			t.Fatal("Expected no fields")
		}
	})

	t.Run("Should fail on field names that cannot become struct fields", func(t *testing.T) {
		model := NewModel("Bad", map[string]Field{
			"1bad": {Name: "1bad", Annotation: reflect.TypeOf("")},
		})
		if _, err := CreateSchemaDefault(model); err == nil {
			t.Fatal("Expected an error")
		}
	})

	t.Run("Should fail on colliding struct field names", func(t *testing.T) {
		model := NewModel("Bad", map[string]Field{
			"a_b":  {Name: "a_b", Annotation: reflect.TypeOf("")},
			"a__b": {Name: "a__b", Annotation: reflect.TypeOf("")},
		})
		if _, err := CreateSchemaDefault(model); err == nil {
			t.Fatal("Expected an error")
		}
	})
}

func TestBuildConvention(t *testing.T) {
	t.Run("Should require a model name under the named convention", func(t *testing.T) {
		if _, err := buildModel("", nil, ConventionNamed); err == nil {
			t.Fatal("Expected an error")
		}
		if _, err := buildModel("Named", nil, ConventionNamed); err != nil {
			t.Fatal("Expected no error, got", err)
		}
	})

	t.Run("Should allow anonymous models under the fields convention", func(t *testing.T) {
		if _, err := buildModel("", nil, ConventionFields); err != nil {
			t.Fatal("Expected no error, got", err)
		}
	})
}
