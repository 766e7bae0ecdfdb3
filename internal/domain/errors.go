package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors below wrap one of these so callers can
// match on the kind with errors.Is without caring which field failed.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrEmptyName    = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone number", ErrValidation)
	ErrInvalidDate  = fmt.Errorf("%w: invalid date format, use DD.MM.YYYY", ErrValidation)

	ErrPhoneNotFound = fmt.Errorf("phone number %w", ErrNotFound)
)
