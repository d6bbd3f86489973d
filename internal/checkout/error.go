package checkout

import "errors"

var (
	// -- Assembly --
	ErrMissingVariant  = errors.New("cart item missing variant id required by private endpoint")
	ErrInvalidQuantity = errors.New("cart item has non-positive quantity")
	ErrUnknownEndpoint = errors.New("unknown endpoint kind")

	// -- Submission --
	ErrCartEmpty           = errors.New("cart is empty")
	ErrShippingNotSelected = errors.New("shipping method not selected")
	ErrPaymentNotSelected  = errors.New("payment method not selected")
)
