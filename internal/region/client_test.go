package region

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) Client {
	return &client{baseURL: baseURL, httpClient: http.DefaultClient}
}

func TestClient_Provinces(t *testing.T) {
	t.Run("Enveloped bare array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/provinces", r.URL.Path)
			w.Write([]byte(`{"code":200,"message":"ok","data":[{"id":1,"name":"Aceh"}]}`))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL).Provinces(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Aceh", got[0].Name)
	})

	t.Run("Double-wrapped data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":200,"message":"ok","data":{"data":[{"id":"2","name":"Bali"}]}}`))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL).Provinces(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bali", got[0].Name)
	})

	t.Run("No envelope at all", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":3,"name":"Banten"}]`))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL).Provinces(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Banten", got[0].Name)
	})

	t.Run("Malformed data degrades to empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":200,"message":"ok","data":"oops"}`))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL).Provinces(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Provinces(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_CitiesAndDistricts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/provinces/32/cities":
			w.Write([]byte(`{"code":200,"data":[{"id":"3204","name":"Bandung"}]}`))
		case "/cities/3204/districts":
			w.Write([]byte(`{"code":200,"data":[{"id":"3204190","name":"Cimenyan"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	cities, err := c.Cities(context.Background(), "32")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Bandung", cities[0].Name)

	districts, err := c.Districts(context.Background(), "3204")
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, "Cimenyan", districts[0].Name)
}
