package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blackboxinc-be/internal/utils"
)

const defaultPerPage int32 = 10

// int32Query parses an optional numeric query parameter. Absent or
// unparseable values yield nil so repositories apply their defaults.
func int32Query(r *http.Request, name string) *int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := int32(n)
	return &v
}

func uintParam(r *http.Request, name string) (uint, error) {
	return utils.ToUint(chi.URLParam(r, name))
}
