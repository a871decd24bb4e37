package domain

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

var (
	MessageFailedBodyRequest   = "failed to parse request body"
	MessageValidationFailed    = "Validation failed"
	MessageInternalServerError = "Internal server error"
	MessageUserIDRequired      = "User ID is required"

	ErrInvalidID = errors.New("id must be a positive integer")
)

// ValidationError carries every violation found in one pass so the
// caller always sees the complete list, never a partial one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ParseID parses a route parameter as a positive integer surrogate key.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// IsProduction reports whether the app runs with the production flag set.
// Error responses carry raw fault detail only when it is off.
func IsProduction() bool {
	return os.Getenv("IS_PROD") == "true"
}
