package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrNotAuthenticated    = errors.New("no active session")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("received amount is less than total")
	ErrNotFound            = errors.New("not found")
)

// ValidationKind classifies a rejected input.
type ValidationKind string

const (
	MissingRequiredField ValidationKind = "missing_required_field"
	NonNumericQuantity   ValidationKind = "non_numeric_quantity"
	NegativeQuantity     ValidationKind = "negative_quantity"
	InvalidValue         ValidationKind = "invalid_value"
)

// ValidationError reports a field that failed input validation.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingRequiredField:
		return fmt.Sprintf("%s is required", e.Field)
	case NonNumericQuantity:
		return fmt.Sprintf("%s must be a number", e.Field)
	case NegativeQuantity:
		return fmt.Sprintf("%s must not be negative", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func newValidationError(field string, kind ValidationKind) error {
	return &ValidationError{Field: field, Kind: kind}
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ParseQuantity converts raw user input into a quantity.
func ParseQuantity(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, newValidationError(field, MissingRequiredField)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newValidationError(field, NonNumericQuantity)
	}
	return n, nil
}
