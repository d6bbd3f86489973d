package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("product variant not found")

	ErrFailedGetProducts = errors.New("failed to get products")
	ErrFailedGetProduct  = errors.New("failed to get product")
	ErrFailedGetVariant  = errors.New("failed to get product variant")
)
