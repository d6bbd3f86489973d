package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"blackboxinc-be/internal/logger"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
)

// Handler receives gateway transaction-status notifications and applies
// them to the matching order.
type Handler struct {
	OrderSvc order.Service
	Gateway  payment.Gateway
}

func NewHandler(orderSvc order.Service, gateway payment.Gateway) *Handler {
	return &Handler{
		OrderSvc: orderSvc,
		Gateway:  gateway,
	}
}

// Notification handles the gateway's POST. The signature is checked before
// anything is trusted; an unknown external id answers 404 so the gateway
// stops retrying a transaction we never created.
func (h *Handler) Notification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var n payment.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := h.Gateway.VerifySignature(n); err != nil {
		log.Warn("webhook signature rejected",
			zap.String("external_id", n.ExternalID))
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	code := payment.CodeFromOutcome(n.Outcome)
	err = h.OrderSvc.UpdateStatusByExternalID(r.Context(), n.ExternalID, code)
	if errors.Is(err, order.ErrOrderNotFound) {
		http.Error(w, "unknown order", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("failed to apply webhook status",
			zap.String("external_id", n.ExternalID), zap.Error(err))
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}

	log.Info("webhook applied",
		zap.String("external_id", n.ExternalID),
		zap.String("outcome", n.Outcome),
		zap.Int("status_code", code))

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
