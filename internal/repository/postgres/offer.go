package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/database"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// OfferRepository implements repository.OfferRepository using PostgreSQL.
type OfferRepository struct {
	pool database.DBTX
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool database.DBTX) *OfferRepository {
	return &OfferRepository{pool: pool}
}

// Create inserts a new offer into the database.
func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	query := `
		INSERT INTO offers (id, title, description, image_url, discount_percentage, discount_amount, code, is_active, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.Title,
		o.Description,
		o.ImageURL,
		o.DiscountPercentage,
		o.DiscountAmount,
		o.Code,
		o.IsActive,
		o.StartDate,
		o.EndDate,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("offer", "code", stringOrEmpty(o.Code))
		}
		return fmt.Errorf("insert offer: %w", err)
	}

	return nil
}

// List returns all offers, newest first.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	query := `
		SELECT id, title, description, image_url, discount_percentage, discount_amount, code, is_active, start_date, end_date, created_at, updated_at
		FROM offers
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.Description,
			&o.ImageURL,
			&o.DiscountPercentage,
			&o.DiscountAmount,
			&o.Code,
			&o.IsActive,
			&o.StartDate,
			&o.EndDate,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}

	return offers, nil
}

// Update modifies an existing offer in the database.
func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	o.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE offers
		SET title = $1, description = $2, image_url = $3, discount_percentage = $4,
		    discount_amount = $5, code = $6, is_active = $7, start_date = $8,
		    end_date = $9, updated_at = $10
		WHERE id = $11`

	ct, err := r.pool.Exec(ctx, query,
		o.Title,
		o.Description,
		o.ImageURL,
		o.DiscountPercentage,
		o.DiscountAmount,
		o.Code,
		o.IsActive,
		o.StartDate,
		o.EndDate,
		o.UpdatedAt,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("offer", o.ID)
	}

	return nil
}

// Delete removes an offer from the database by its ID.
func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("offer", id)
	}

	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
