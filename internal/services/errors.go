package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoUserIDsProvided = errors.New("no user ids provided")
	ErrUsernameRequired  = errors.New("username is required")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrPasswordTooShort  = errors.New("password too short")
)

// Field error messages
const (
	MsgFieldRequired  = "This field is required."
	MsgFieldBlank     = "This field may not be blank."
	MsgFieldNull      = "This field may not be null."
	MsgInvalidChoice  = "%q is not a valid choice."
	MsgMaxLength      = "Ensure this field has no more than %d characters."
	MsgObjectNotExist = "Invalid pk \"%d\" - object does not exist."
	MsgNotAString     = "Not a valid string."
	MsgExpectedIDList = "Expected a list of user ids."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgEmailTaken     = "A user with that email already exists."
)

// ValidationError collects field-keyed validation messages
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add records a message against a field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field has a message
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface. Fields are listed alphabetically.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidUserIDsError lists requested user ids that do not resolve to a user
type InvalidUserIDsError struct {
	IDs []uint64
}

func (e *InvalidUserIDsError) Error() string {
	return fmt.Sprintf("invalid user ids: %v", e.IDs)
}
