package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBedNotFound     = errors.New("bed not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInvalidTransition   = errors.New("booking status transition is not allowed")
	ErrAlreadyOccupied     = errors.New("bed is already occupied")
	ErrBedHasActiveBooking = errors.New("bed has a confirmed booking")
	ErrListingUnavailable  = errors.New("listing is not available")
	ErrRoomUnavailable     = errors.New("room is not available")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
)
