/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no factory is registered for a type key
	ErrNotFound = errors.New("no factory registered")

	// ErrInvalidArgument is returned when a create call receives an
	// unusable argument (empty name, nil callback, negative queue size)
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError reports a type key with no registration in a registry.
// It is an expected outcome, not corruption: the type simply has not
// been linked in.
type NotFoundError struct {
	Registry string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s factory registered for type %q", e.Registry, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a caller-induced argument error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(registry, key string) error {
	return &NotFoundError{Registry: registry, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
