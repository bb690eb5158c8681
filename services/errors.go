package services

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrPaymentReviewed is returned when approving or rejecting a payment
	// that already left the pending state.
	ErrPaymentReviewed = errors.New("payment has already been reviewed")
)
