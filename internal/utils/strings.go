// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"strings"
	"unicode"
)

// SnakeCase converts an exported Go identifier to its snake_case wire name.
// All-uppercase identifiers are lowered as a whole.
func SnakeCase(camel string) string {
	if camel == strings.ToUpper(camel) {
		return strings.ToLower(camel)
	}

	var result strings.Builder
	for i, char := range camel {
		if unicode.IsUpper(char) {
			lowered := unicode.ToLower(char)
			if i > 0 {
				result.WriteRune('_')
				result.WriteRune(lowered)
				continue
			}

			result.WriteRune(lowered)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// StructFieldName converts a snake_case field name into an exported Go
// struct field name.
func StructFieldName(fieldName string) string {
	words := strings.Split(fieldName, "_")
	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			result.WriteString(string(runes))
		}
	}
	return result.String()
}
