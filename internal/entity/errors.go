package entity

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrForbidden             = errors.New("forbidden")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOrderCreationFailed   = errors.New("order creation failed")
	ErrSessionCreationFailed = errors.New("payment session creation failed")
	ErrPaymentFailed         = errors.New("payment failed")
	ErrPollTimeout           = errors.New("payment status poll timed out")
	ErrTransientQuery        = errors.New("transient payment status query error")
	ErrAlreadyPolling        = errors.New("payment status is already polled for order")
	ErrSurfaceBlocked        = errors.New("payment surface blocked")
)
