package dto

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInternalFailure = errors.New("internal failure")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed field of a request body. It is
// returned as one error so no partial write ever happens on a bad payload.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fieldError := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldError.Field, fieldError.Message))
	}
	return strings.Join(parts, "; ")
}
