package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionInvalid is returned when the database session is unusable and
	// the operation must fail fast rather than risk a partial commit
	ErrSessionInvalid = errors.New("session invalid")

	// ErrTerminalState is returned when attempting to revert a terminal
	// execution status
	ErrTerminalState = errors.New("execution already in terminal state")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConnectionError marks connection-class database failures (connection
// closed, server unreachable, relation missing). Callers use this to report
// a structured outcome instead of crashing.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failure during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// classifyDBError wraps connection-class failures in ConnectionError and
// returns other errors unchanged.
func classifyDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"broken pipe",
		"does not exist", // missing relation
		"driver: bad connection",
	} {
		if strings.Contains(msg, marker) {
			return &ConnectionError{Op: op, Err: err}
		}
	}
	return err
}
