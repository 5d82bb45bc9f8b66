package service

import (
	"context"
	"log/slog"

	"github.com/furnworld/storefront/internal/catalog"
	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
	"github.com/furnworld/storefront/pkg/pagination"
)

// ListProductsInput holds the query parameters for a product listing.
type ListProductsInput struct {
	Category    string
	Subcategory string
	Facets      domain.Facets
	SortKey     string
	Pagination  pagination.Params
}

// ProductListing is a filtered, sorted, paginated slice of the catalog along
// with the facet values available in the filtered set.
type ProductListing struct {
	Products  []domain.Product `json:"products"`
	Total     int              `json:"total"`
	Colors    []string         `json:"colors"`
	Materials []string         `json:"materials"`
}

// CatalogService answers storefront catalog queries against the catalog
// store. All operations are read-only.
type CatalogService struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *catalog.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// ListProducts returns the products matching the input, narrowed in order:
// category, subcategory, facets; then sorted and paginated. The facet values
// reported describe the filtered set before pagination, so a facet choice
// never reveals options that would return nothing.
func (s *CatalogService) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListing, error) {
	if input.SortKey != "" && !domain.IsValidSortKey(input.SortKey) {
		return nil, apperrors.InvalidInput("unknown sort key: " + input.SortKey)
	}

	products := s.store.Products()

	if input.Category != "" {
		products = catalog.FilterByCategory(products, input.Category)
	}
	if input.Subcategory != "" {
		products = catalog.FilterBySubcategory(products, input.Category, input.Subcategory)
	}
	products = catalog.FilterByFacets(products, input.Facets)
	products = catalog.SortProducts(products, input.SortKey)

	colors, materials := catalog.FacetValues(products)
	total := len(products)
	page := pagination.Slice(products, input.Pagination)

	return &ProductListing{
		Products:  page,
		Total:     total,
		Colors:    colors,
		Materials: materials,
	}, nil
}

// Search returns products whose text fields contain the query. An empty or
// whitespace-only query returns no results rather than the whole catalog.
func (s *CatalogService) Search(ctx context.Context, query string) []domain.Product {
	return catalog.SearchProducts(s.store.Products(), query)
}

// Featured returns the products highlighted on the home page.
func (s *CatalogService) Featured(ctx context.Context) []domain.Product {
	return catalog.FeaturedProducts(s.store.Products())
}

// GetProduct returns a single product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product := s.store.Get(id)
	if product == nil {
		return nil, apperrors.NotFound("product", id)
	}

	return product, nil
}

// GetProductBySlug returns a single product by its URL slug, the lookup the
// storefront product page uses.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("product slug is required")
	}

	product := s.store.GetBySlug(ctx, slug)
	if product == nil {
		return nil, apperrors.NotFound("product", slug)
	}

	return product, nil
}

// NavigationCategory is a category with its subcategories, shaped for the
// storefront navigation menu.
type NavigationCategory struct {
	domain.Category
	Subcategories []domain.Subcategory `json:"subcategories"`
}

// Navigation returns the category tree for the storefront menu.
func (s *CatalogService) Navigation(ctx context.Context) []NavigationCategory {
	categories := s.store.Categories()
	subcategories := s.store.Subcategories("")

	bySlug := make(map[string][]domain.Subcategory, len(categories))
	for _, sub := range subcategories {
		bySlug[sub.CategoryID] = append(bySlug[sub.CategoryID], sub)
	}

	tree := make([]NavigationCategory, 0, len(categories))
	for _, c := range categories {
		tree = append(tree, NavigationCategory{
			Category:      c,
			Subcategories: bySlug[c.ID],
		})
	}
	return tree
}

// Banners returns the active hero banners.
func (s *CatalogService) Banners(ctx context.Context) []domain.Banner {
	return s.store.Banners()
}

// Offers returns the active promotional offers.
func (s *CatalogService) Offers(ctx context.Context) []domain.Offer {
	return s.store.Offers()
}
