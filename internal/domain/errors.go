package domain

import (
	"errors"
	"fmt"
)

// Application error codes
const (
	EINVALID   = "invalid"    // Invalid input or validation failure
	ENOTFOUND  = "not_found"  // Resource not found
	ETOOLARGE  = "too_large"  // Request entity too large
	ERATELIMIT = "rate_limit" // Rate limit exceeded
	EINTERNAL  = "internal"   // Internal server error
)

// GenericErrorMessage is shown to visitors for every internal failure.
const GenericErrorMessage = "Det gick inte att skicka din förfrågan just nu. Försök igen om en stund."

// Error represents an application error with structured information.
type Error struct {
	Code    string // Machine-readable error code
	Op      string // Operation that failed (e.g., "lead.submit")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error with the given code, operation, and formatted message.
func Errorf(code, op, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the root error, or EINTERNAL if none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return EINVALID
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message()
	}
	var e *Error
	if errors.As(err, &e) {
		// For internal errors, return generic message
		if e.Code == EINTERNAL {
			return GenericErrorMessage
		}
		return e.Message
	}
	return GenericErrorMessage
}

// ErrorOp returns the operation of the root error, if any.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Op
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Invalid creates a validation error.
func Invalid(op, message string) *Error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error, wrapping the underlying error.
func Internal(err error, op, message string) *Error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// RateLimit creates a rate limit error.
func RateLimit(op string) *Error {
	return &Error{
		Code:    ERATELIMIT,
		Op:      op,
		Message: "För många förfrågningar. Vänta en stund och försök igen.",
	}
}

// FieldIssue describes why a single field failed validation.
type FieldIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError represents field-level validation errors.
// Issues keep the order in which fields were checked.
type ValidationError struct {
	Op     string
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation failed", e.Op)
}

// Message is the visitor-facing summary of the failure.
func (e *ValidationError) Message() string {
	return "Kontrollera uppgifterna i formuläret."
}

// Has reports whether field has at least one issue.
func (e *ValidationError) Has(field string) bool {
	for _, issue := range e.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the first message per field, keyed by field name.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Issues))
	for _, issue := range e.Issues {
		if _, ok := fields[issue.Field]; !ok {
			fields[issue.Field] = issue.Message
		}
	}
	return fields
}

// NewValidationError creates a new validation error with the first field error.
func NewValidationError(op, field, code, message string) *ValidationError {
	return &ValidationError{
		Op:     op,
		Issues: []FieldIssue{{Field: field, Code: code, Message: message}},
	}
}

// AddFieldError adds a field error to an existing validation error.
// If err is not a ValidationError, returns a new one.
func AddFieldError(err error, field, code, message string) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Issues = append(ve.Issues, FieldIssue{Field: field, Code: code, Message: message})
		return ve
	}
	return NewValidationError("", field, code, message)
}
