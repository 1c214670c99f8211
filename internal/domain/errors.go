package domain

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown room category")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoRoomsAvailable = errors.New("no rooms available in category")
)

var (
	ErrValidation = errors.New("validation error")
)
