package order

import "errors"

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrInvalidFulfillmentStatus = errors.New("invalid fulfillment status")

	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedGetOrders   = errors.New("failed to get orders")
	ErrFailedUpdateOrder = errors.New("failed to update order")
)
