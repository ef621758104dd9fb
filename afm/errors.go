package afm

import (
	"context"
	"errors"

	"github.com/ONSdigital/log.go/v2/log"
)

// Validation errors for measure definitions
var (
	ErrMissingMeasureDefinition   = errors.New("measure definition carries no variant")
	ErrAmbiguousMeasureDefinition = errors.New("measure definition carries more than one variant")
)

// Error represents a custom error type with additional context and description.
type Error struct {
	Cause       error  `json:"-"`           // The underlying error, if available.
	Code        string `json:"code"`        // Error code representing the type of error.
	Description string `json:"description"` // Detailed description of the error.
}

// Error returns the error message string for the custom Error type.
func (e Error) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code + ": " + e.Description
}

// NewValidationError creates a new Error specifically for validation errors with a code and description.
func NewValidationError(ctx context.Context, code, description string) Error {
	err := Error{
		Cause:       errors.New(code),
		Code:        code,
		Description: description,
	}
	log.Error(ctx, description, err, log.Data{"code": code})
	return err
}
