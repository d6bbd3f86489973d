package rest

import (
	"encoding/json"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/checkout"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/shipping"
	"blackboxinc-be/internal/utils"
)

type destinationRequest struct {
	DistrictID string `json:"district_id" validate:"required"`
}

type shippingRequest struct {
	Courier string               `json:"courier" validate:"required"`
	Option  *shipping.CostOption `json:"option" validate:"required"`
}

type voucherRequest struct {
	VoucherID int `json:"voucher_id" validate:"required"`
}

type submitRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	AddressLine   string `json:"address_line" validate:"required"`
}

type guestSubmitRequest struct {
	CustomerName  string               `json:"customer_name" validate:"required"`
	CustomerEmail string               `json:"customer_email" validate:"required,email"`
	AddressLine   string               `json:"address_line" validate:"required"`
	DistrictID    string               `json:"district_id" validate:"required"`
	Courier       string               `json:"courier" validate:"required"`
	Option        *shipping.CostOption `json:"option" validate:"required"`
	Payment       payment.Selection    `json:"payment"`
	Items         []checkout.GuestLine `json:"items" validate:"required,dive"`
}

type submitResponse struct {
	OrderID     uint         `json:"order_id"`
	ExternalID  string       `json:"external_id"`
	Status      order.Status `json:"status"`
	Total       int          `json:"total"`
	RedirectURL string       `json:"redirect_url,omitempty"`
	PaymentCode string       `json:"payment_code,omitempty"`
}

func (h *Handler) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*checkout.Session, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return nil, false
	}
	return h.Checkout.Session(userID), true
}

func (h *Handler) SetDestination(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.SetDestination(req.DistrictID)
	respond(w, http.StatusOK, "destination set", nil)
}

func (h *Handler) SetShipping(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req shippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.SetShipping(req.Courier, req.Option)
	respond(w, http.StatusOK, "shipping selected", nil)
}

func (h *Handler) ClearShipping(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.ClearShipping()
	respond(w, http.StatusOK, "shipping cleared", nil)
}

func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var sel payment.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := sess.SetPayment(sel); err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, "payment selected", nil)
}

func (h *Handler) AddVoucher(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req voucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.AddVoucher(req.VoucherID)
	respond(w, http.StatusOK, "voucher applied", sess.Vouchers())
}

func (h *Handler) CheckoutSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, "success", map[string]interface{}{
		"district_id": sess.Destination(),
		"shipping":    sess.Shipping(),
		"payment":     sess.Payment(),
		"voucher_ids": sess.Vouchers(),
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Checkout.Submit(r.Context(), checkout.SubmitParams{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		AddressLine:   req.AddressLine,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "order submitted", toSubmitResponse(res))
}

func (h *Handler) SubmitGuest(w http.ResponseWriter, r *http.Request) {
	var req guestSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Checkout.SubmitGuest(r.Context(), checkout.GuestSubmitParams{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		AddressLine:    req.AddressLine,
		DistrictID:     req.DistrictID,
		Courier:        req.Courier,
		ShippingOption: req.Option,
		Payment:        req.Payment,
		Lines:          req.Items,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "order submitted", toSubmitResponse(res))
}

func toSubmitResponse(res *checkout.Result) submitResponse {
	return submitResponse{
		OrderID:     res.Order.ID,
		ExternalID:  res.Order.ExternalID,
		Status:      res.Status,
		Total:       res.Order.Total,
		RedirectURL: res.RedirectURL,
		PaymentCode: res.PaymentCode,
	}
}
