package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/checkout"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/user"
)

// Envelope is the uniform response shape: code mirrors the HTTP status,
// message is human-readable, data carries the payload.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Paginated wraps list payloads with paging bookkeeping.
type Paginated struct {
	Data        interface{} `json:"data"`
	CurrentPage int32       `json:"current_page"`
	LastPage    int32       `json:"last_page"`
	Total       int64       `json:"total"`
	PerPage     int32       `json:"per_page"`
}

func respond(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{Code: code, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, code int, message string) {
	respond(w, code, message, nil)
}

func paginated(data interface{}, total int64, limit, page int32) Paginated {
	if limit <= 0 {
		limit = defaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	lastPage := int32((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return Paginated{
		Data:        data,
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
		PerPage:     limit,
	}
}

// respondServiceError maps domain sentinel errors onto HTTP statuses. An
// unmatched error answers 500 without leaking its text.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, product.ErrVariantNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, checkout.ErrCartEmpty),
		errors.Is(err, checkout.ErrMissingVariant),
		errors.Is(err, checkout.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrShippingNotSelected),
		errors.Is(err, checkout.ErrPaymentNotSelected),
		errors.Is(err, payment.ErrMethodRequired),
		errors.Is(err, payment.ErrUnknownType):
		respondError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, user.ErrEmailExists):
		respondError(w, http.StatusConflict, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, cart.ErrUserNotAuthenticated):
		respondError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, order.ErrUnauthorized):
		respondError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, order.ErrInvalidFulfillmentStatus):
		respondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, payment.ErrGatewayUnavailable):
		respondError(w, http.StatusBadGateway, err.Error())

	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
