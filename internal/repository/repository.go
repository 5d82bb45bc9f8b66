// Package repository defines the persistence interfaces for the storefront.
package repository

import (
	"context"

	"github.com/furnworld/storefront/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves a cart by its identifier.
	Get(ctx context.Context, cartID string) (*domain.Cart, error)

	// Save persists a cart.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart by its identifier. Deleting an absent cart
	// is not an error.
	Delete(ctx context.Context, cartID string) error
}

// SessionRepository defines the interface for login session storage.
type SessionRepository interface {
	// Save stores the user record under the session token.
	Save(ctx context.Context, token string, user *domain.User) error

	// Get retrieves the user record for a session token.
	Get(ctx context.Context, token string) (*domain.User, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, token string) error
}

// ProductFilter defines filter criteria for listing products from the
// admin store.
type ProductFilter struct {
	Category    *string
	Subcategory *string
	Search      *string
	Page        int
	PerPage     int
}

// ProductRepository defines the interface for product persistence operations
// used by the admin surface.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns products matching the given filter along with the total count.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category and subcategory
// persistence operations.
type CategoryRepository interface {
	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, category *domain.Category) error

	// ListCategories returns all categories ordered by sort order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, category *domain.Category) error

	// DeleteCategory removes a category by its identifier.
	DeleteCategory(ctx context.Context, id string) error

	// CreateSubcategory inserts a new subcategory.
	CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) error

	// ListSubcategories returns subcategories, optionally scoped to one
	// category ID (empty string means all), ordered by sort order.
	ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error)

	// DeleteSubcategory removes a subcategory by its identifier.
	DeleteSubcategory(ctx context.Context, id string) error
}

// BannerRepository defines the interface for banner persistence operations.
type BannerRepository interface {
	// Create inserts a new banner.
	Create(ctx context.Context, banner *domain.Banner) error

	// List returns all banners ordered by sort order.
	List(ctx context.Context) ([]domain.Banner, error)

	// Update modifies an existing banner.
	Update(ctx context.Context, banner *domain.Banner) error

	// Delete removes a banner by its identifier.
	Delete(ctx context.Context, id string) error
}

// OfferRepository defines the interface for offer persistence operations.
type OfferRepository interface {
	// Create inserts a new offer.
	Create(ctx context.Context, offer *domain.Offer) error

	// List returns all offers, newest first.
	List(ctx context.Context) ([]domain.Offer, error)

	// Update modifies an existing offer.
	Update(ctx context.Context, offer *domain.Offer) error

	// Delete removes an offer by its identifier.
	Delete(ctx context.Context, id string) error
}
