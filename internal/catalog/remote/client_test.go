package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnworld/storefront/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig(srv.URL)
	// No retries, so failure cases return immediately.
	cfg.HTTP.MaxRetries = 0
	return New(cfg, testLogger())
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
}

// ---

func TestListProducts_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		writeEnvelope(t, w, []domain.Product{
			{ID: "sofa-1", Name: "Monroe Sofa", Price: 1299},
		})
	})

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Monroe Sofa", products[0].Name)
}

func TestListSubcategories_PassesCategoryID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/subcategories", r.URL.Path)
		assert.Equal(t, "living-room", r.URL.Query().Get("category_id"))
		writeEnvelope(t, w, []domain.Subcategory{
			{ID: "living-room/sofas", CategoryID: "living-room", Name: "Sofas"},
		})
	})

	subs, err := client.ListSubcategories(context.Background(), "living-room")

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "living-room", subs[0].CategoryID)
}

func TestListSubcategories_OmitsQueryWhenUnscoped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("category_id"))
		writeEnvelope(t, w, []domain.Subcategory{})
	})

	_, err := client.ListSubcategories(context.Background(), "")

	require.NoError(t, err)
}

func TestGetProductBySlug_DecodesProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/slug/monroe-sofa", r.URL.Path)
		writeEnvelope(t, w, domain.Product{ID: "sofa-1", Name: "Monroe Sofa"})
	})

	product, err := client.GetProductBySlug(context.Background(), "monroe-sofa")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "sofa-1", product.ID)
}

func TestGetProductBySlug_NotFoundIsNilWithoutError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	product, err := client.GetProductBySlug(context.Background(), "ghost-chair")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestListBanners_BackendErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream database down", http.StatusBadGateway)
	})

	_, err := client.ListBanners(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error 502")
}

func TestListOffers_MalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": "not an array"`))
	})

	_, err := client.ListOffers(context.Background())

	require.Error(t, err)
}
