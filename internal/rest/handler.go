package rest

import (
	"github.com/go-playground/validator/v10"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/checkout"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/region"
	"blackboxinc-be/internal/shipping"
	"blackboxinc-be/internal/user"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Products product.Service
	Carts    cart.Service
	Users    user.Service
	Orders   order.Service
	Checkout checkout.Service
	Regions  region.Client
	Shipping shipping.Client

	validate *validator.Validate
}

func NewHandler(
	products product.Service,
	carts cart.Service,
	users user.Service,
	orders order.Service,
	checkoutSvc checkout.Service,
	regions region.Client,
	shippingClient shipping.Client,
) *Handler {
	return &Handler{
		Products: products,
		Carts:    carts,
		Users:    users,
		Orders:   orders,
		Checkout: checkoutSvc,
		Regions:  regions,
		Shipping: shippingClient,
		validate: validator.New(),
	}
}
