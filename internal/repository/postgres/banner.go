package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/database"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// BannerRepository implements repository.BannerRepository using PostgreSQL.
type BannerRepository struct {
	pool database.DBTX
}

// NewBannerRepository creates a new PostgreSQL-backed banner repository.
func NewBannerRepository(pool database.DBTX) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// Create inserts a new banner into the database.
func (r *BannerRepository) Create(ctx context.Context, b *domain.Banner) error {
	query := `
		INSERT INTO banners (id, title, subtitle, image_url, link_url, cta_text, sort_order, is_active, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Subtitle,
		b.ImageURL,
		b.LinkURL,
		b.CTAText,
		b.SortOrder,
		b.IsActive,
		b.StartDate,
		b.EndDate,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}

	return nil
}

// List returns all banners ordered by sort order.
func (r *BannerRepository) List(ctx context.Context) ([]domain.Banner, error) {
	query := `
		SELECT id, title, subtitle, image_url, link_url, cta_text, sort_order, is_active, start_date, end_date, created_at, updated_at
		FROM banners
		ORDER BY sort_order, created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	banners := []domain.Banner{}
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Subtitle,
			&b.ImageURL,
			&b.LinkURL,
			&b.CTAText,
			&b.SortOrder,
			&b.IsActive,
			&b.StartDate,
			&b.EndDate,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan banner row: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banner rows: %w", err)
	}

	return banners, nil
}

// Update modifies an existing banner in the database.
func (r *BannerRepository) Update(ctx context.Context, b *domain.Banner) error {
	b.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE banners
		SET title = $1, subtitle = $2, image_url = $3, link_url = $4, cta_text = $5,
		    sort_order = $6, is_active = $7, start_date = $8, end_date = $9, updated_at = $10
		WHERE id = $11`

	ct, err := r.pool.Exec(ctx, query,
		b.Title,
		b.Subtitle,
		b.ImageURL,
		b.LinkURL,
		b.CTAText,
		b.SortOrder,
		b.IsActive,
		b.StartDate,
		b.EndDate,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", b.ID)
	}

	return nil
}

// Delete removes a banner from the database by its ID.
func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", id)
	}

	return nil
}
