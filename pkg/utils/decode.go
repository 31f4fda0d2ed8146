package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
)

// DecodeJSON strictly decodes body into dst. Unknown fields, mistyped values
// and trailing data are reported as ValidationErrors.
func DecodeJSON(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return ValidationErrors{{Problem: "request body must contain a single JSON value"}}
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return ValidationErrors{{Problem: "request body is required"}}
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return ValidationErrors{{Problem: "request body is not valid JSON"}}
	case errors.As(err, &typeErr):
		return ValidationErrors{{Field: typeErr.Field, Problem: "must be " + jsonKind(typeErr.Type)}}
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return ValidationErrors{{Field: field, Problem: "is not allowed"}}
	}
	return ValidationErrors{{Problem: err.Error()}}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	}
	return "a " + t.String()
}
