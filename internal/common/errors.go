package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Catalog errors
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Checkout errors
	ErrOutOfStock              = errors.New("requested quantity exceeds stock")
	ErrShippingMethodNotFound  = errors.New("shipping method not found")
	ErrCartEmpty               = errors.New("cart is empty")
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrBillNotFound            = errors.New("bill not found")
	ErrInvalidStatusTransition = errors.New("invalid bill status transition")

	// Event errors
	ErrEventNotFound    = errors.New("event not found")
	ErrEventInUse       = errors.New("event has application history and cannot be deleted")
	ErrInvalidTimeRange = errors.New("event start time must be before end time")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentSettled  = errors.New("payment already settled")

	// Auth errors
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("member already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
