// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

import (
	"github.com/go-playground/validator/v10"

	"github.com/tugascript/crudkit/internal/utils"
)

const (
	fieldErrTagRequired string = "required"
	fieldErrTagEqField  string = "eqfield"
	fieldErrTagOneOf    string = "oneof"

	strFieldErrTagMin   string = "min"
	strFieldErrTagMax   string = "max"
	strFieldErrTagEmail string = "email"
	strFieldErrTagUrl   string = "url"
	strFieldUUID        string = "uuid"

	intFieldErrTagGte string = "gte"
	intFieldErrTagLte string = "lte"

	FieldErrMessageInvalid  string = "must be valid"
	FieldErrMessageRequired string = "must be provided"
	FieldErrMessageEqField  string = "does not match equivalent field"
	FieldErrMessageOneOf    string = "must be one of the allowed values"

	StrFieldErrMessageEmail string = "must be a valid email"
	StrFieldErrMessageMin   string = "must be longer"
	StrFieldErrMessageMax   string = "must be shorter"
	StrFieldErrMessageUrl   string = "must be a valid URL"
	StrFieldErrMessageUUID  string = "must be a valid UUID"

	IntFieldErrMessageLte string = "must be less"
	IntFieldErrMessageGte string = "must be greater"

	queryErrorKindMissing string = "value_error.missing"
	queryErrorKindValue   string = "value_error"
)

func selectStrErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case strFieldErrTagEmail:
		return StrFieldErrMessageEmail
	case strFieldErrTagMin:
		return StrFieldErrMessageMin
	case strFieldErrTagMax:
		return StrFieldErrMessageMax
	case fieldErrTagEqField:
		return FieldErrMessageEqField
	case strFieldErrTagUrl:
		return StrFieldErrMessageUrl
	case strFieldUUID:
		return StrFieldErrMessageUUID
	case fieldErrTagOneOf:
		return FieldErrMessageOneOf
	default:
		return FieldErrMessageInvalid
	}
}

func selectIntErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case intFieldErrTagLte, strFieldErrTagMax:
		return IntFieldErrMessageLte
	case intFieldErrTagGte, strFieldErrTagMin:
		return IntFieldErrMessageGte
	default:
		return FieldErrMessageInvalid
	}
}

func buildFieldErrorMessage(tag string, val interface{}) string {
	switch val.(type) {
	case int, int16, int32, int64:
		return selectIntErrMessage(tag)
	default:
		return selectStrErrMessage(tag)
	}
}

func buildFieldErrorKind(tag string, val interface{}) string {
	if tag == fieldErrTagRequired {
		return queryErrorKindMissing
	}

	switch val.(type) {
	case int, int16, int32, int64:
		return QueryErrorKindInteger
	default:
		return queryErrorKindValue
	}
}

// QueryValidationErrorFromValidator translates struct-tag validation failures
// into the same detail payload the hand-built query errors use.
func QueryValidationErrorFromValidator(errs validator.ValidationErrors, location string) *QueryValidationError {
	detail := make([]QueryFieldError, len(errs))

	for i, field := range errs {
		value := field.Value()
		detail[i] = QueryFieldError{
			Loc:  []string{location, utils.SnakeCase(field.Field())},
			Msg:  buildFieldErrorMessage(field.Tag(), value),
			Type: buildFieldErrorKind(field.Tag(), value),
		}
	}

	return &QueryValidationError{
		Status: StatusUnprocessableEntity,
		Detail: detail,
	}
}
