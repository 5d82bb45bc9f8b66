package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/furnworld/storefront/internal/catalog"
	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/event"
	"github.com/furnworld/storefront/internal/repository"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// AddItemInput holds the parameters for adding an item to the cart.
type AddItemInput struct {
	ProductID     string `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	SelectedColor string `json:"selected_color"`
}

// UpdateQuantityInput holds the parameters for updating an item quantity.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// ProductResolver looks up products for cart mutations. The catalog store
// satisfies it.
type ProductResolver interface {
	Get(id string) *domain.Product
}

var _ ProductResolver = (*catalog.Store)(nil)

// CartService implements the business logic for cart operations. Mutations
// load the cart, apply the change in memory, and persist the result. A
// failed write is logged and swallowed so the caller always gets the mutated
// cart back; the next successful write re-syncs storage.
type CartService struct {
	repo     repository.CartRepository
	products ProductResolver
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, products ProductResolver, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart with the given ID. A missing, expired, or
// unreadable cart comes back empty rather than as an error.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("cart id is required")
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to load cart, starting empty",
				slog.String("cart_id", cartID),
				slog.String("error", err.Error()),
			)
		}
		return s.newEmptyCart(cartID), nil
	}

	return cart, nil
}

// AddItem adds the product to the cart. An existing line item for the same
// product ID is merged by increasing its quantity, whatever color was
// selected. The resulting quantity never exceeds the product's stock count.
func (s *CartService) AddItem(ctx context.Context, cartID string, input AddItemInput) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("cart id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product := s.products.Get(input.ProductID)
	if product == nil {
		return nil, apperrors.NotFound("product", input.ProductID)
	}

	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if !cart.AddItem(*product, input.Quantity, input.SelectedColor) {
		// Non-positive quantity, nothing to do.
		return cart, nil
	}

	s.persist(ctx, cart)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("cart_id", cartID),
		slog.String("product_id", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

// UpdateQuantity replaces the quantity of a line item. A quantity of zero or
// less removes the item. An unknown product ID leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("cart id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if !cart.UpdateQuantity(productID, quantity) {
		return cart, nil
	}

	s.persist(ctx, cart)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("cart_id", cartID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem removes the line item for the product. Removing an absent
// product is a no-op, so the call always succeeds.
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("cart id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(productID) {
		return cart, nil
	}

	s.persist(ctx, cart)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("cart_id", cartID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// ClearCart removes every item from the cart.
func (s *CartService) ClearCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("cart id is required")
	}

	if err := s.repo.Delete(ctx, cartID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete stored cart, serving empty cart anyway",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishCartCleared(ctx, cartID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("cart_id", cartID),
	)

	return s.newEmptyCart(cartID), nil
}

// persist writes the cart to storage. Write failures are logged and
// swallowed: the in-memory cart stays authoritative for this request and the
// next successful write re-syncs storage.
func (s *CartService) persist(ctx context.Context, cart *domain.Cart) {
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart, continuing with in-memory state",
			slog.String("cart_id", cart.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("cart_id", cart.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) newEmptyCart(cartID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        cartID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
