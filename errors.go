package telefield

import "github.com/telefield/telefield/internal/errorutil"

// Error represents an engine error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument

	// ErrUnknownRegion is returned when a region code has no catalog entry.
	ErrUnknownRegion Error = "unknown region"
	// ErrCountryNotAvailable is returned when a country outside the
	// configured available set is selected.
	ErrCountryNotAvailable Error = "country not available"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps the provided error with it.
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
