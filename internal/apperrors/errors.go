// Package apperrors defines the error kinds that the HTTP layer translates
// into response envelopes.
package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports a missing resource looked up by one of its fields.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func NotFound(resource, field string, value any) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// BadRequestError is a business-rule or input violation.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func BadRequest(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError carries one message per offending request field.
type ValidationError struct {
	Fields map[string]string
}

// Error renders the fields as {field=message, ...} with sorted keys.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(e.Fields[k])
	}
	b.WriteByte('}')
	return b.String()
}

func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func Unauthorized(message string) error {
	return &UnauthorizedError{Message: message}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func Forbidden(message string) error {
	return &ForbiddenError{Message: message}
}
