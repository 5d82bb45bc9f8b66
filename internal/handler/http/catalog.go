package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/service"
	"github.com/furnworld/storefront/pkg/httputil"
	"github.com/furnworld/storefront/pkg/pagination"
)

// CatalogHandler handles HTTP requests for catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products
//
// Query parameters: category, subcategory, sort, colors, materials,
// price_min, price_max, in_stock, page, per_page. The colors and materials
// parameters take comma-separated values.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := service.ListProductsInput{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		SortKey:     q.Get("sort"),
		Facets:      facetsFromQuery(r),
		Pagination:  pagination.FromRequest(r),
	}

	listing, err := h.service.ListProducts(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: listing})
}

// Featured handles GET /api/v1/products/featured
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Featured(r.Context())})
}

// GetProduct handles GET /api/v1/products/{productID}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// GetProductBySlug handles GET /api/v1/products/slug/{slug}
func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Search handles GET /api/v1/search
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	results := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: results})
}

// Navigation handles GET /api/v1/navigation
func (h *CatalogHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Navigation(r.Context())})
}

// Banners handles GET /api/v1/banners
func (h *CatalogHandler) Banners(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Banners(r.Context())})
}

// Offers handles GET /api/v1/offers
func (h *CatalogHandler) Offers(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Offers(r.Context())})
}

// facetsFromQuery builds the facet filter from query parameters. Absent or
// malformed values impose no constraint.
func facetsFromQuery(r *http.Request) domain.Facets {
	q := r.URL.Query()

	var facets domain.Facets
	if colors := q.Get("colors"); colors != "" {
		facets.Colors = splitCSV(colors)
	}
	if materials := q.Get("materials"); materials != "" {
		facets.Materials = splitCSV(materials)
	}
	facets.InStockOnly = q.Get("in_stock") == "true"

	minStr, maxStr := q.Get("price_min"), q.Get("price_max")
	if minStr != "" || maxStr != "" {
		min, minErr := strconv.ParseFloat(minStr, 64)
		max, maxErr := strconv.ParseFloat(maxStr, 64)
		if minErr != nil {
			min = 0
		}
		if maxErr != nil {
			max = maxUnbounded
		}
		facets.PriceRange = &[2]float64{min, max}
	}

	return facets
}

// maxUnbounded stands in for an absent upper price bound.
const maxUnbounded = 1 << 40

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
