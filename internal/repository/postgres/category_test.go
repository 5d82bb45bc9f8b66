package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// ─── Category column definitions ────────────────────────────────────────────

var categoryCols = []string{
	"id", "name", "slug", "icon", "description", "image_url", "sort_order",
	"is_active", "created_at", "updated_at",
}

var subcategoryCols = []string{
	"id", "category_id", "name", "slug", "description", "image_url",
	"sort_order", "is_active", "created_at", "updated_at",
}

func sampleCategory() domain.Category {
	return domain.Category{
		ID:        "cat-living-room",
		Name:      "Living Room",
		Slug:      "living-room",
		Icon:      "sofa",
		SortOrder: 1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func categoryRow(c domain.Category) []any {
	return []any{
		c.ID, c.Name, c.Slug, c.Icon, c.Description, c.ImageURL,
		c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CategoryRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestCategoryRepository_CreateCategory_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(
			c.ID, c.Name, c.Slug, c.Icon, c.Description, c.ImageURL,
			c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateCategory(context.Background(), &c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_CreateCategory_DuplicateSlug(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(
			c.ID, c.Name, c.Slug, c.Icon, c.Description, c.ImageURL,
			c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
		).
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.CreateCategory(context.Background(), &c)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListCategories_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	living := sampleCategory()
	bedroom := sampleCategory()
	bedroom.ID = "cat-bedroom"
	bedroom.Name = "Bedroom"
	bedroom.Slug = "bedroom"
	bedroom.SortOrder = 2

	mock.ExpectQuery("SELECT .+ FROM categories").
		WillReturnRows(
			pgxmock.NewRows(categoryCols).
				AddRow(categoryRow(living)...).
				AddRow(categoryRow(bedroom)...),
		)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "living-room", categories[0].Slug)
	assert.Equal(t, "bedroom", categories[1].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListCategories_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories").
		WillReturnRows(pgxmock.NewRows(categoryCols))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_UpdateCategory_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()
	mock.ExpectExec("UPDATE categories").
		WithArgs(
			c.Name, c.Slug, c.Icon, c.Description, c.ImageURL,
			c.SortOrder, c.IsActive, pgxmock.AnyArg(), c.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateCategory(context.Background(), &c)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteCategory_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("cat-living-room").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteCategory(context.Background(), "cat-living-room")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteCategory_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteCategory(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// Subcategories
// ─────────────────────────────────────────────────────────────────────────────

func TestCategoryRepository_ListSubcategories_ScopedToCategory(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	sub := domain.Subcategory{
		ID:         "sub-sofas",
		CategoryID: "cat-living-room",
		Name:       "Sofas",
		Slug:       "sofas",
		SortOrder:  1,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery("SELECT .+ FROM subcategories WHERE category_id").
		WithArgs("cat-living-room").
		WillReturnRows(
			pgxmock.NewRows(subcategoryCols).AddRow(
				sub.ID, sub.CategoryID, sub.Name, sub.Slug, sub.Description,
				sub.ImageURL, sub.SortOrder, sub.IsActive, sub.CreatedAt, sub.UpdatedAt,
			),
		)

	subs, err := repo.ListSubcategories(context.Background(), "cat-living-room")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sofas", subs[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListSubcategories_Unscoped(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM subcategories ORDER BY").
		WillReturnRows(pgxmock.NewRows(subcategoryCols))

	subs, err := repo.ListSubcategories(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetCategoryBySlug_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories WHERE slug").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetCategoryBySlug(context.Background(), "ghost")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
