package rest

import (
	"encoding/json"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/user"
	"blackboxinc-be/internal/utils"
)

type orderView struct {
	ID          uint               `json:"id"`
	ExternalID  string             `json:"external_id"`
	Status      order.Status       `json:"status"`
	PaymentType string             `json:"payment_type"`
	Courier     string             `json:"courier"`
	Subtotal    int                `json:"subtotal"`
	Discount    int                `json:"discount"`
	Total       int                `json:"total"`
	Items       []*order.OrderItem `json:"items,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

type fulfillmentRequest struct {
	Status order.Status `json:"status" validate:"required"`
}

func toOrderView(o *order.Order) orderView {
	return orderView{
		ID:          o.ID,
		ExternalID:  o.ExternalID,
		Status:      o.Status(),
		PaymentType: o.PaymentType,
		Courier:     o.Courier,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Total:       o.Total,
		Items:       o.Items,
		CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	opts := order.ListOptions{
		Limit: int32Query(r, "limit"),
		Page:  int32Query(r, "page"),
	}
	// admins may list everything; everyone else is scoped to their own
	if utils.GetUserRoleFromContext(r.Context()) != string(user.RoleAdmin) {
		opts.UserID = &userID
	}

	orders, total, err := h.Orders.List(r.Context(), opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		o.Items = nil // list view stays shallow
		views = append(views, toOrderView(o))
	}

	respond(w, http.StatusOK, "success",
		paginated(views, total, utils.PtrInt32(opts.Limit, defaultPerPage), utils.PtrInt32(opts.Page, 1)))
}

func (h *Handler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	orderID, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	isAdmin := utils.GetUserRoleFromContext(r.Context()) == string(user.RoleAdmin)
	o, err := h.Orders.Detail(r.Context(), userID, orderID, isAdmin)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "success", toOrderView(o))
}

func (h *Handler) UpdateFulfillment(w http.ResponseWriter, r *http.Request) {
	orderID, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req fulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Orders.UpdateFulfillment(r.Context(), orderID, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "fulfillment updated", nil)
}
