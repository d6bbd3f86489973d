package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blackboxinc-be/internal/logger"
	"blackboxinc-be/internal/middleware"
	"blackboxinc-be/internal/payment/webhook"
)

// NewRouter wires the HTTP surface. Authentication is optional at the
// router level; route groups opt into RequireAuth/RequireAdmin.
func NewRouter(h *Handler, wh *webhook.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, "ok", nil)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.ProductDetail)

	r.Get("/regions/provinces", h.Provinces)
	r.Get("/regions/provinces/{provinceID}/cities", h.Cities)
	r.Get("/regions/cities/{cityID}/districts", h.Districts)
	r.Get("/shipping/costs", h.ShippingCosts)

	r.Post("/checkout/guest", h.SubmitGuest)
	r.Post("/webhook/payment", wh.Notification)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/me", h.Profile)

		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddToCart)
		r.Patch("/cart", h.UpdateCartQuantity)
		r.Delete("/cart/item", h.RemoveCartItem)
		r.Delete("/cart", h.ClearCart)

		r.Get("/checkout/session", h.CheckoutSession)
		r.Put("/checkout/destination", h.SetDestination)
		r.Put("/checkout/shipping", h.SetShipping)
		r.Delete("/checkout/shipping", h.ClearShipping)
		r.Put("/checkout/payment", h.SetPayment)
		r.Post("/checkout/vouchers", h.AddVoucher)
		r.Post("/checkout", h.Submit)

		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.OrderDetail)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdmin)

		r.Patch("/orders/{id}/fulfillment", h.UpdateFulfillment)
	})

	return r
}
