package service

import "errors"

// Errors surfaced to the API layer. All of them block the guest's action
// rather than crashing the roster.
var (
	ErrInvalidWindow     = errors.New("departure must be on or after arrival")
	ErrNoWindow          = errors.New("no booking window selected")
	ErrRefreshing        = errors.New("availability refresh in progress")
	ErrNotBookable       = errors.New("room is not available for the selected window")
	ErrUnknownRoom       = errors.New("unknown room id")
	ErrEmptySelection    = errors.New("no rooms selected")
	ErrZeroTotal         = errors.New("booking total must be positive")
	ErrMissingGuestInfo  = errors.New("guest full name and phone are required")
	ErrPaymentUnverified = errors.New("payment reference could not be verified")
	ErrEmptyCart         = errors.New("cart is empty")
)
