// Package remote implements the catalog Provider against the hosted
// storefront backend over HTTP.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/httpclient"
)

// Client fetches catalog data from the remote backend. All calls go through
// a circuit breaker so a backend outage trips fast instead of piling up
// timeouts.
type Client struct {
	baseURL string
	http    *httpclient.CircuitBreakerClient
	logger  *slog.Logger
}

// Config holds remote catalog client configuration.
type Config struct {
	BaseURL string
	HTTP    httpclient.Config
	Breaker httpclient.CircuitBreakerConfig
}

// DefaultConfig returns sensible defaults pointing at the given base URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		HTTP:    httpclient.DefaultConfig(),
		Breaker: httpclient.DefaultCircuitBreakerConfig("catalog-backend"),
	}
}

// New creates a remote catalog client.
func New(cfg Config, logger *slog.Logger) *Client {
	base := httpclient.New(cfg.HTTP)
	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpclient.NewCircuitBreakerClient(base, cfg.Breaker, logger),
		logger:  logger,
	}
}

// envelope matches the backend's response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// get fetches path and decodes the data field of the envelope into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return fmt.Errorf("catalog backend GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog backend GET %s: unexpected status %d: %s", path, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("catalog backend GET %s: decode response: %w", path, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("catalog backend GET %s: decode data: %w", path, err)
	}
	return nil
}

// ListProducts returns every active product from the backend.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/v1/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories returns every active category from the backend.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/api/v1/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListSubcategories returns active subcategories, optionally scoped to one
// category ID.
func (c *Client) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	path := "/api/v1/subcategories"
	if categoryID != "" {
		path += "?category_id=" + url.QueryEscape(categoryID)
	}
	var subcategories []domain.Subcategory
	if err := c.get(ctx, path, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}

// GetProductBySlug returns the active product with the given URL slug.
// A backend 404 means no such product and returns nil without error.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	path := "/api/v1/products/slug/" + url.PathEscape(slug)
	resp, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("catalog backend GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog backend GET %s: unexpected status %d: %s", path, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("catalog backend GET %s: decode response: %w", path, err)
	}
	var product domain.Product
	if err := json.Unmarshal(env.Data, &product); err != nil {
		return nil, fmt.Errorf("catalog backend GET %s: decode data: %w", path, err)
	}
	return &product, nil
}

// ListBanners returns the active hero banners from the backend.
func (c *Client) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := c.get(ctx, "/api/v1/banners", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// ListOffers returns the active promotional offers from the backend.
func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := c.get(ctx, "/api/v1/offers", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
