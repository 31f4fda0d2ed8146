package utils

import "strings"

// FieldError names one invalid input field and what is wrong with it.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationErrors is returned for malformed or invalid payloads.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		if fe.Field == "" {
			parts = append(parts, fe.Problem)
			continue
		}
		parts = append(parts, fe.Field+" "+fe.Problem)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Prefix qualifies every field with p, e.g. "[2]" for the third batch entry.
func (v ValidationErrors) Prefix(p string) ValidationErrors {
	out := make(ValidationErrors, len(v))
	for i, fe := range v {
		if fe.Field == "" {
			fe.Field = p
		} else {
			fe.Field = p + "." + fe.Field
		}
		out[i] = fe
	}
	return out
}
