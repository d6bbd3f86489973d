package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackboxinc-be/internal/user"
	"blackboxinc-be/internal/utils"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	t.Run("ValidTokenInjectsIdentity", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "USER", "budi@example.com")
		require.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(7), id)
			assert.Equal(t, "budi@example.com", utils.GetUserEmailFromContext(r.Context()))
		})

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingTokenPassesThroughAnonymous", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("GET", "/products", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GarbageTokenPassesThroughAnonymous", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
	})
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders", nil)
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Authenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 7, "budi@example.com", "USER"))
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("RegularUser", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/orders/1/fulfillment", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 7, "budi@example.com", "USER"))
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/orders/1/fulfillment", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 1, "admin@example.com", "ADMIN"))
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("StrictTierExhausts", func(t *testing.T) {
		var tooMany bool
		for i := 0; i < burstStrict+3; i++ {
			req := httptest.NewRequest("POST", "/auth/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				tooMany = true
			}
		}
		assert.True(t, tooMany, "burst should run out on the strict tier")
	})

	t.Run("SeparateIdentitiesSeparateBuckets", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
