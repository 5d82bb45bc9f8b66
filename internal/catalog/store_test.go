package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnworld/storefront/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeProvider serves canned data per collection, with per-collection errors.
type fakeProvider struct {
	products      []domain.Product
	banners       []domain.Banner
	productBySlug *domain.Product

	productsErr      error
	categoriesErr    error
	subcategoriesErr error
	bannersErr       error
	offersErr        error
	bySlugErr        error
}

func (f *fakeProvider) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeProvider) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: "living-room", Name: "Living Room", Slug: "living-room"}}, f.categoriesErr
}

func (f *fakeProvider) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	return []domain.Subcategory{{ID: "living-room/sofas", CategoryID: "living-room", Name: "Sofas", Slug: "sofas"}}, f.subcategoriesErr
}

func (f *fakeProvider) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return f.productBySlug, f.bySlugErr
}

func (f *fakeProvider) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return f.banners, f.bannersErr
}

func (f *fakeProvider) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return []domain.Offer{{ID: "offer-1", Title: "Clearance"}}, f.offersErr
}

// ---

func TestNewStore_SeededWithSampleCatalog(t *testing.T) {
	store := NewStore(nil, testLogger())

	assert.NotEmpty(t, store.Products())
	assert.Len(t, store.Categories(), 8)
	assert.NotEmpty(t, store.Subcategories(""))
	assert.NotEmpty(t, store.Banners())
	assert.NotEmpty(t, store.Offers())
}

func TestRefresh_NilProviderKeepsSampleData(t *testing.T) {
	store := NewStore(nil, testLogger())
	before := store.Products()

	store.Refresh(context.Background())

	assert.Equal(t, before, store.Products())
}

func TestRefresh_ReplacesCollections(t *testing.T) {
	provider := &fakeProvider{
		products: []domain.Product{{ID: "remote-1", Name: "Remote Sofa", Category: "Living Room"}},
		banners:  []domain.Banner{{ID: "remote-banner", Title: "Remote Banner"}},
	}
	store := NewStore(provider, testLogger())

	store.Refresh(context.Background())

	products := store.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "remote-1", products[0].ID)

	banners := store.Banners()
	require.Len(t, banners, 1)
	assert.Equal(t, "remote-banner", banners[0].ID)
}

func TestRefresh_FailedFetchKeepsPreviousCollection(t *testing.T) {
	provider := &fakeProvider{
		products:    []domain.Product{{ID: "remote-1", Name: "Remote Sofa"}},
		bannersErr:  fmt.Errorf("backend unreachable"),
		offersErr:   fmt.Errorf("backend unreachable"),
	}
	store := NewStore(provider, testLogger())
	sampleBanners := store.Banners()

	store.Refresh(context.Background())

	// Products came through, banners and offers kept the sample fallback.
	require.Len(t, store.Products(), 1)
	assert.Equal(t, sampleBanners, store.Banners())
	assert.NotEmpty(t, store.Offers())
}

func TestSubcategories_ScopedToCategory(t *testing.T) {
	store := NewStore(nil, testLogger())

	all := store.Subcategories("")
	living := store.Subcategories("living-room")

	assert.Greater(t, len(all), len(living))
	require.NotEmpty(t, living)
	for _, sub := range living {
		assert.Equal(t, "living-room", sub.CategoryID)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	store := NewStore(nil, testLogger())

	p := store.Get("sofa-1")
	require.NotNil(t, p)
	p.Name = "mutated"

	again := store.Get("sofa-1")
	assert.NotEqual(t, "mutated", again.Name)
}

func TestGet_UnknownIDReturnsNil(t *testing.T) {
	store := NewStore(nil, testLogger())

	assert.Nil(t, store.Get("ghost-9"))
}

func TestGetBySlug_MatchesSampleProduct(t *testing.T) {
	store := NewStore(nil, testLogger())

	p := store.GetBySlug(context.Background(), "modern-sectional-sofa")

	require.NotNil(t, p)
	assert.Equal(t, "sofa-1", p.ID)
}

func TestGetBySlug_MissFallsThroughToProvider(t *testing.T) {
	provider := &fakeProvider{
		productBySlug: &domain.Product{ID: "remote-7", Name: "Walnut Armchair"},
	}
	store := NewStore(provider, testLogger())

	p := store.GetBySlug(context.Background(), "walnut-armchair")

	require.NotNil(t, p)
	assert.Equal(t, "remote-7", p.ID)
}

func TestGetBySlug_ProviderFailureMeansNotFound(t *testing.T) {
	provider := &fakeProvider{bySlugErr: fmt.Errorf("backend unreachable")}
	store := NewStore(provider, testLogger())

	assert.Nil(t, store.GetBySlug(context.Background(), "no-such-product"))
}

func TestProducts_SnapshotIsIsolated(t *testing.T) {
	store := NewStore(nil, testLogger())

	snapshot := store.Products()
	snapshot[0].Name = "mutated"

	assert.NotEqual(t, "mutated", store.Products()[0].Name)
}
