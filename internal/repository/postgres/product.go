// Package postgres implements the admin-facing repositories on PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/repository"
	"github.com/furnworld/storefront/pkg/database"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, category, subcategory, price, original_price,
		images, colors, materials, in_stock, stock_count, rating, review_count,
		tags, dimensions, weight, is_new, is_bestseller, discount`

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	images, colors, materials, tags, dimensions, err := marshalProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (` + productColumns + `, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $21)`

	now := time.Now().UTC()
	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Category,
		p.Subcategory,
		p.Price,
		p.OriginalPrice,
		images,
		colors,
		materials,
		p.InStock,
		p.StockCount,
		p.Rating,
		p.ReviewCount,
		tags,
		dimensions,
		p.Weight,
		p.IsNew,
		p.IsBestseller,
		p.Discount,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "id", p.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	var (
		p          domain.Product
		images     []byte
		colors     []byte
		materials  []byte
		tags       []byte
		dimensions []byte
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Subcategory,
		&p.Price,
		&p.OriginalPrice,
		&images,
		&colors,
		&materials,
		&p.InStock,
		&p.StockCount,
		&p.Rating,
		&p.ReviewCount,
		&tags,
		&dimensions,
		&p.Weight,
		&p.IsNew,
		&p.IsBestseller,
		&p.Discount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if err := unmarshalProductJSON(&p, images, colors, materials, tags, dimensions); err != nil {
		return nil, err
	}

	return &p, nil
}

// List returns products matching the given filter with the total count.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *filter.Category)
		argIndex++
	}

	if filter.Subcategory != nil {
		conditions = append(conditions, fmt.Sprintf("subcategory = $%d", argIndex))
		args = append(args, *filter.Subcategory)
		argIndex++
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Use count(*) OVER() for total count in a single query.
	query := fmt.Sprintf(`
		SELECT `+productColumns+`,
			   count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []domain.Product
		totalCount int
	)

	for rows.Next() {
		var (
			p          domain.Product
			images     []byte
			colors     []byte
			materials  []byte
			tags       []byte
			dimensions []byte
		)

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.Subcategory,
			&p.Price,
			&p.OriginalPrice,
			&images,
			&colors,
			&materials,
			&p.InStock,
			&p.StockCount,
			&p.Rating,
			&p.ReviewCount,
			&tags,
			&dimensions,
			&p.Weight,
			&p.IsNew,
			&p.IsBestseller,
			&p.Discount,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}

		if err := unmarshalProductJSON(&p, images, colors, materials, tags, dimensions); err != nil {
			return nil, 0, err
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, totalCount, nil
}

// Update modifies an existing product in the database.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	images, colors, materials, tags, dimensions, err := marshalProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, subcategory = $4,
		    price = $5, original_price = $6, images = $7, colors = $8,
		    materials = $9, in_stock = $10, stock_count = $11, rating = $12,
		    review_count = $13, tags = $14, dimensions = $15, weight = $16,
		    is_new = $17, is_bestseller = $18, discount = $19, updated_at = $20
		WHERE id = $21`

	ct, err := r.pool.Exec(ctx, query,
		p.Name,
		p.Description,
		p.Category,
		p.Subcategory,
		p.Price,
		p.OriginalPrice,
		images,
		colors,
		materials,
		p.InStock,
		p.StockCount,
		p.Rating,
		p.ReviewCount,
		tags,
		dimensions,
		p.Weight,
		p.IsNew,
		p.IsBestseller,
		p.Discount,
		time.Now().UTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product from the database by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// marshalProductJSON prepares the JSON-typed columns for writing.
func marshalProductJSON(p *domain.Product) (images, colors, materials, tags, dimensions []byte, err error) {
	if images, err = json.Marshal(p.Images); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("marshal images: %w", err)
	}
	if colors, err = json.Marshal(p.Colors); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("marshal colors: %w", err)
	}
	if materials, err = json.Marshal(p.Materials); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("marshal materials: %w", err)
	}
	if tags, err = json.Marshal(p.Tags); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("marshal tags: %w", err)
	}
	if p.Dimensions != nil {
		if dimensions, err = json.Marshal(p.Dimensions); err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("marshal dimensions: %w", err)
		}
	}
	return images, colors, materials, tags, dimensions, nil
}

// unmarshalProductJSON fills the JSON-typed columns after a scan.
func unmarshalProductJSON(p *domain.Product, images, colors, materials, tags, dimensions []byte) error {
	if images != nil {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}
	if colors != nil {
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return fmt.Errorf("unmarshal colors: %w", err)
		}
	}
	if materials != nil {
		if err := json.Unmarshal(materials, &p.Materials); err != nil {
			return fmt.Errorf("unmarshal materials: %w", err)
		}
	}
	if tags != nil {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if dimensions != nil {
		if err := json.Unmarshal(dimensions, &p.Dimensions); err != nil {
			return fmt.Errorf("unmarshal dimensions: %w", err)
		}
	}
	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
