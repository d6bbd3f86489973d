package rest

import (
	"encoding/json"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/utils"
)

type cartItemRequest struct {
	ProductID uint  `json:"product_id" validate:"required"`
	VariantID *uint `json:"product_variant_id"`
	Quantity  int   `json:"quantity" validate:"required"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	limit, page := int32Query(r, "limit"), int32Query(r, "page")
	views, total, err := h.Carts.GetCart(r.Context(), userID, limit, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "success",
		paginated(views, total, utils.PtrInt32(limit, defaultPerPage), utils.PtrInt32(page, 1)))
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Carts.AddToCart(r.Context(), cart.AddToCartParams{
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "item added to cart", cart.ToView(item))
}

func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	err := h.Carts.UpdateQuantity(r.Context(), cart.UpdateQuantityParams{
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "cart updated", nil)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	err := h.Carts.RemoveFromCart(r.Context(), cart.RemoveParams{
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "item removed", nil)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	if err := h.Carts.ClearCart(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "cart cleared", nil)
}
