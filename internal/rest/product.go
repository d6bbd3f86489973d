package rest

import (
	"net/http"

	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/utils"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts := product.ListOptions{
		Limit: int32Query(r, "limit"),
		Page:  int32Query(r, "page"),
	}
	if filter := r.URL.Query().Get("filter"); filter != "" {
		opts.Filter = utils.StrPtr(filter)
	}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := utils.ToUint(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		opts.CategoryID = &id
	}

	products, total, err := h.Products.List(r.Context(), opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	limit, page := utils.PtrInt32(opts.Limit, defaultPerPage), utils.PtrInt32(opts.Page, 1)
	respond(w, http.StatusOK, "success", paginated(products, total, limit, page))
}

func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.Products.Detail(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "success", p)
}
