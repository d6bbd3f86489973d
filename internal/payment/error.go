package payment

import "errors"

var (
	ErrMethodRequired   = errors.New("payment method required for automatic payments")
	ErrUnknownType      = errors.New("unknown payment type")
	ErrInvalidSignature = errors.New("invalid webhook signature")

	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
