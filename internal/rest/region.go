package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blackboxinc-be/internal/shipping"
)

func (h *Handler) Provinces(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Regions.Provinces(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "region service unavailable")
		return
	}
	respond(w, http.StatusOK, "success", regions)
}

func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Regions.Cities(r.Context(), chi.URLParam(r, "provinceID"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "region service unavailable")
		return
	}
	respond(w, http.StatusOK, "success", regions)
}

func (h *Handler) Districts(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Regions.Districts(r.Context(), chi.URLParam(r, "cityID"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "region service unavailable")
		return
	}
	respond(w, http.StatusOK, "success", regions)
}

func (h *Handler) ShippingCosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := strconv.Atoi(q.Get("weight"))
	if err != nil || weight <= 0 {
		respondError(w, http.StatusBadRequest, "invalid weight")
		return
	}

	query := shipping.CostQuery{
		Courier:     q.Get("courier"),
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Weight:      weight,
	}
	if query.Courier == "" || query.Destination == "" {
		respondError(w, http.StatusBadRequest, "courier and destination are required")
		return
	}

	options, err := h.Shipping.Costs(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusBadGateway, "courier service unavailable")
		return
	}

	respond(w, http.StatusOK, "success", options)
}
