package rest

import (
	"encoding/json"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/user"
	"blackboxinc-be/internal/utils"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func toAuthResponse(token string, u user.User) authResponse {
	var res authResponse
	res.Token = token
	res.User.ID = u.ID
	res.User.Name = u.Name
	res.User.Email = u.Email
	res.User.Role = string(u.Role)
	return res
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var params user.RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(params); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.Users.Register(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "registered", toAuthResponse(token, u))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var params user.LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.validate.Struct(params); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.Users.Login(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "logged in", toAuthResponse(token, u))
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondServiceError(w, cart.ErrUserNotAuthenticated)
		return
	}

	u, err := h.Users.Profile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "success", map[string]interface{}{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}
