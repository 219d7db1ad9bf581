package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Stay range errors
	ErrInvalidRange = errors.New("invalid stay range")

	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room unavailable for requested dates")
	ErrDuplicateRoomNumber = errors.New("room number already registered")

	// Client errors
	ErrClientNotFound    = errors.New("client not found")
	ErrDuplicatePassport = errors.New("passport number already registered")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyTerminal = errors.New("booking is already cancelled or completed")

	// Entity construction rejected the input
	ErrValidationFailed = errors.New("domain validation failed")

	// Storage pass-through
	ErrRepositoryFailure = errors.New("repository operation failed")
)
