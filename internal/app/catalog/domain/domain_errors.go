package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Identifier chain errors, ordered root to leaf. The patch orchestrator
	// fails fast at the first missing level so callers can tell them apart.
	ErrEntryNotFound    = errors.New("catalog entry not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrColorNotFound    = errors.New("color not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrContactNotFound  = errors.New("contact not found")

	// Uniqueness errors
	ErrTitleTaken       = errors.New("catalog entry with this title already exists")
	ErrVariantNameTaken = errors.New("variant with this name already exists")
	ErrCategoryTaken    = errors.New("category id or slug already exists")

	// Invariant errors
	ErrInvalidStatus   = errors.New("invalid lifecycle status")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidStock    = errors.New("stock must not be negative")
	ErrInvalidSection  = errors.New("invalid detail section")
	ErrInvalidScheme   = errors.New("invalid scheme name")
	ErrEmptyPatch      = errors.New("no fields provided for update")
	ErrCategoryInUse   = errors.New("category has catalog entries referencing it")

	// ErrUploadFailed wraps failures of the external upload capability.
	// The request is terminal; blobs uploaded earlier in the same batch are
	// not rolled back (accepted orphaned-asset risk).
	ErrUploadFailed = errors.New("image upload failed")
)

// ValidationError reports a malformed payload, naming the field that failed.
// Payload shape is rejected strictly; index directives, by contrast, degrade
// leniently (see DecodeIndexes).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the identifier-chain sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrVariantNotFound) ||
		errors.Is(err, ErrColorNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrContactNotFound)
}
