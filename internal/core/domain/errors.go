package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
	ErrInvalidToken    = errors.New("invalid token")

	ErrInvalidRole = errors.New("invalid role")
	ErrInvalidID   = errors.New("invalid identifier")

	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPurchaseInProgress means another request holding the same
	// idempotency key has not finished yet.
	ErrPurchaseInProgress = errors.New("purchase already in progress")
)
