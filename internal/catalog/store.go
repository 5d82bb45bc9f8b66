package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/furnworld/storefront/internal/domain"
)

// Provider is the remote catalog data source. Implementations fetch records
// from a hosted backend; the Store degrades to the embedded sample data when
// any call fails.
type Provider interface {
	// ListProducts returns every active product.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListCategories returns every active category in sort order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListSubcategories returns the active subcategories, optionally scoped
	// to one category ID (empty string means all).
	ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error)

	// GetProductBySlug returns the active product with the given URL slug,
	// or nil when no product matches.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// ListBanners returns the active hero banners in sort order.
	ListBanners(ctx context.Context) ([]domain.Banner, error)

	// ListOffers returns the active promotional offers.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
}

// Store owns the authoritative product collection and answers catalog
// queries. It is seeded with the embedded sample catalog and refreshed from
// the remote provider when one is configured; a failed refresh keeps the
// previous data so a provider outage never surfaces to callers.
// Safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	products      []domain.Product
	categories    []domain.Category
	subcategories []domain.Subcategory
	banners       []domain.Banner
	offers        []domain.Offer

	provider Provider
	logger   *slog.Logger
}

// NewStore creates a catalog store seeded with the sample catalog.
// The provider may be nil, in which case the store serves sample data only.
func NewStore(provider Provider, logger *slog.Logger) *Store {
	return &Store{
		products:      SampleProducts(),
		categories:    SampleCategories(),
		subcategories: SampleSubcategories(),
		banners:       SampleBanners(),
		offers:        SampleOffers(),
		provider:      provider,
		logger:        logger,
	}
}

// Refresh replaces the store's collections with fresh data from the remote
// provider. Each collection is fetched independently; a failed fetch logs
// and keeps the collection it could not replace. Refresh never returns an
// error because the store always has servable data.
func (s *Store) Refresh(ctx context.Context) {
	if s.provider == nil {
		return
	}

	if products, err := s.provider.ListProducts(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh: products fetch failed, serving previous data",
			slog.String("error", err.Error()),
		)
	} else {
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
	}

	if categories, err := s.provider.ListCategories(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh: categories fetch failed, serving previous data",
			slog.String("error", err.Error()),
		)
	} else {
		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()
	}

	if subcategories, err := s.provider.ListSubcategories(ctx, ""); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh: subcategories fetch failed, serving previous data",
			slog.String("error", err.Error()),
		)
	} else {
		s.mu.Lock()
		s.subcategories = subcategories
		s.mu.Unlock()
	}

	if banners, err := s.provider.ListBanners(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh: banners fetch failed, serving previous data",
			slog.String("error", err.Error()),
		)
	} else {
		s.mu.Lock()
		s.banners = banners
		s.mu.Unlock()
	}

	if offers, err := s.provider.ListOffers(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh: offers fetch failed, serving previous data",
			slog.String("error", err.Error()),
		)
	} else {
		s.mu.Lock()
		s.offers = offers
		s.mu.Unlock()
	}
}

// Products returns a snapshot of the full product collection.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a snapshot of the category list.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Subcategories returns the subcategories, optionally scoped to one
// category slug (empty string means all).
func (s *Store) Subcategories(categorySlug string) []domain.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Subcategory, 0)
	for _, sub := range s.subcategories {
		if categorySlug == "" || sub.CategoryID == categorySlug {
			out = append(out, sub)
		}
	}
	return out
}

// Banners returns a snapshot of the banner list.
func (s *Store) Banners() []domain.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Banner, len(s.banners))
	copy(out, s.banners)
	return out
}

// Offers returns a snapshot of the offer list.
func (s *Store) Offers() []domain.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Get returns the product with the given ID, or nil if absent.
func (s *Store) Get(id string) *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := ProductByID(s.products, id); p != nil {
		cp := *p
		return &cp
	}
	return nil
}

// GetBySlug returns the product with the given URL slug. The local snapshot
// is checked first; on a miss the remote provider is consulted, so a product
// added upstream is reachable before the next refresh. A provider failure is
// logged and treated as not found.
func (s *Store) GetBySlug(ctx context.Context, productSlug string) *domain.Product {
	s.mu.RLock()
	p := ProductBySlug(s.products, productSlug)
	s.mu.RUnlock()
	if p != nil {
		cp := *p
		return &cp
	}

	if s.provider == nil {
		return nil
	}
	remote, err := s.provider.GetProductBySlug(ctx, productSlug)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog: product by slug fetch failed",
			slog.String("slug", productSlug),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return remote
}
