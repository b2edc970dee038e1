package errors

import (
	"fmt"
	"strings"
)

// FieldError is one failed check of a config field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists failed field checks in the order they were found.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField groups the messages by field name.
func (v *ValidationError) ByField() map[string][]string {
	out := make(map[string][]string, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

// ToError converts v to an INVALID_ARGUMENT error carrying the field
// messages under the "validation_errors" meta key. It is nil when v is empty.
func (v *ValidationError) ToError() *Error {
	if len(v.Fields) == 0 {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.ByField())
}

// ValidationBuilder accumulates field errors for a Validate method.
type ValidationBuilder struct {
	err ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields = append(vb.err.Fields, FieldError{Field: field, Message: message})
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when every check passed.
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired fails blank strings.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMin checks that an integer value is at least minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
