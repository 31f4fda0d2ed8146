package utils

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can map errors onto inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Custom validations
	_ = v.RegisterValidation("image_ref", validateImageRef)

	return &Validator{
		validate: v,
	}
}

// Struct validates s and returns ValidationErrors for rule violations.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fieldPath(fe), Problem: describe(fe)})
		}
		return out
	}
	return err
}

// fieldPath drops the root struct name from the namespace: "highlights[0]", "name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		default:
			if fe.Param() == "1" {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "image_ref":
		return "must be an http(s) URL or a base64 data:image URI"
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

// validateImageRef accepts absolute http(s) URLs and base64 data:image URIs.
func validateImageRef(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if IsDataURI(value) {
		_, _, err := ParseDataURI(value)
		return err == nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
