package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/database"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	pool database.DBTX
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool database.DBTX) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// CreateCategory inserts a new category into the database.
func (r *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, icon, description, image_url, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Slug,
		c.Icon,
		c.Description,
		c.ImageURL,
		c.SortOrder,
		c.IsActive,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// ListCategories returns all categories ordered by sort order.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, description, image_url, sort_order, is_active, created_at, updated_at
		FROM categories
		ORDER BY sort_order, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.Icon,
			&c.Description,
			&c.ImageURL,
			&c.SortOrder,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

// UpdateCategory modifies an existing category in the database.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE categories
		SET name = $1, slug = $2, icon = $3, description = $4, image_url = $5,
		    sort_order = $6, is_active = $7, updated_at = $8
		WHERE id = $9`

	ct, err := r.pool.Exec(ctx, query,
		c.Name,
		c.Slug,
		c.Icon,
		c.Description,
		c.ImageURL,
		c.SortOrder,
		c.IsActive,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		return fmt.Errorf("update category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", c.ID)
	}

	return nil
}

// DeleteCategory removes a category from the database by its ID.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", id)
	}

	return nil
}

// CreateSubcategory inserts a new subcategory into the database.
func (r *CategoryRepository) CreateSubcategory(ctx context.Context, s *domain.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, slug, description, image_url, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.CategoryID,
		s.Name,
		s.Slug,
		s.Description,
		s.ImageURL,
		s.SortOrder,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("subcategory", "slug", s.Slug)
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}

	return nil
}

// ListSubcategories returns subcategories, optionally scoped to one category
// ID, ordered by sort order.
func (r *CategoryRepository) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	query := `
		SELECT id, category_id, name, slug, description, image_url, sort_order, is_active, created_at, updated_at
		FROM subcategories`
	var args []any
	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []domain.Subcategory{}
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(
			&s.ID,
			&s.CategoryID,
			&s.Name,
			&s.Slug,
			&s.Description,
			&s.ImageURL,
			&s.SortOrder,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		subcategories = append(subcategories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcategory rows: %w", err)
	}

	return subcategories, nil
}

// DeleteSubcategory removes a subcategory from the database by its ID.
func (r *CategoryRepository) DeleteSubcategory(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("subcategory", id)
	}

	return nil
}

// GetCategoryBySlug retrieves a category by its slug.
func (r *CategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, description, image_url, sort_order, is_active, created_at, updated_at
		FROM categories
		WHERE slug = $1`

	var c domain.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Icon,
		&c.Description,
		&c.ImageURL,
		&c.SortOrder,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("category", slug)
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}
