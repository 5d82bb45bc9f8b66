package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/repository"
	apperrors "github.com/furnworld/storefront/pkg/errors"
	"github.com/furnworld/storefront/pkg/slug"
	"github.com/furnworld/storefront/pkg/validator"
)

// ProductInput holds the writable fields of a product for admin create and
// update operations.
type ProductInput struct {
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description"`
	Category      string             `json:"category" validate:"required"`
	Subcategory   string             `json:"subcategory" validate:"required"`
	Price         float64            `json:"price" validate:"gte=0"`
	OriginalPrice *float64           `json:"original_price"`
	Images        []string           `json:"images"`
	Colors        []string           `json:"colors"`
	Materials     []string           `json:"materials"`
	InStock       bool               `json:"in_stock"`
	StockCount    int                `json:"stock_count" validate:"gte=0"`
	Tags          []string           `json:"tags"`
	Dimensions    *domain.Dimensions `json:"dimensions"`
	Weight        *float64           `json:"weight"`
	IsNew         bool               `json:"is_new"`
	IsBestseller  bool               `json:"is_bestseller"`
	Discount      *int               `json:"discount"`
}

// CategoryInput holds the writable fields of a category.
type CategoryInput struct {
	Name      string `json:"name" validate:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// AdminService implements the catalog write operations behind the admin
// surface. Writes go to PostgreSQL; the serving catalog store picks them up
// on its next refresh.
type AdminService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	banners    repository.BannerRepository
	offers     repository.OfferRepository
	logger     *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	banners repository.BannerRepository,
	offers repository.OfferRepository,
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		products:   products,
		categories: categories,
		banners:    banners,
		offers:     offers,
		logger:     logger,
	}
}

// CreateProduct validates the input and inserts a new product.
func (s *AdminService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	product := productFromInput(uuid.NewString(), input)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct validates the input and replaces the stored product.
func (s *AdminService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	product := productFromInput(id, input)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", id),
	)

	return product, nil
}

// DeleteProduct removes a product from the store.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("product id is required")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

// GetProduct retrieves a stored product by ID.
func (s *AdminService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	return s.products.GetByID(ctx, id)
}

// ListProducts returns stored products matching the filter with a total count.
func (s *AdminService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	return s.products.List(ctx, filter)
}

// CreateCategory validates the input and inserts a new category. The slug is
// derived from the name.
func (s *AdminService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		Icon:      input.Icon,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// ListCategories returns all stored categories.
func (s *AdminService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

// DeleteCategory removes a category.
func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("category id is required")
	}
	return s.categories.DeleteCategory(ctx, id)
}

// CreateBanner inserts a new banner.
func (s *AdminService) CreateBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	if banner.Title == "" || banner.ImageURL == "" {
		return nil, apperrors.InvalidInput("banner title and image url are required")
	}

	now := time.Now().UTC()
	banner.ID = uuid.NewString()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner created",
		slog.String("banner_id", banner.ID),
	)

	return banner, nil
}

// ListBanners returns all stored banners.
func (s *AdminService) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.List(ctx)
}

// DeleteBanner removes a banner.
func (s *AdminService) DeleteBanner(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("banner id is required")
	}
	return s.banners.Delete(ctx, id)
}

// CreateOffer inserts a new offer.
func (s *AdminService) CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if offer.Title == "" {
		return nil, apperrors.InvalidInput("offer title is required")
	}

	now := time.Now().UTC()
	offer.ID = uuid.NewString()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.logger.InfoContext(ctx, "offer created",
		slog.String("offer_id", offer.ID),
	)

	return offer, nil
}

// ListOffers returns all stored offers.
func (s *AdminService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx)
}

// DeleteOffer removes an offer.
func (s *AdminService) DeleteOffer(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("offer id is required")
	}
	return s.offers.Delete(ctx, id)
}

func productFromInput(id string, input ProductInput) *domain.Product {
	return &domain.Product{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Images:        input.Images,
		Colors:        input.Colors,
		Materials:     input.Materials,
		InStock:       input.InStock,
		StockCount:    input.StockCount,
		Tags:          input.Tags,
		Dimensions:    input.Dimensions,
		Weight:        input.Weight,
		IsNew:         input.IsNew,
		IsBestseller:  input.IsBestseller,
		Discount:      input.Discount,
	}
}
