package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

func setupCartRepo(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewCartRepository(client, 24*time.Hour)
	return repo, mr
}

func sampleCart() *domain.Cart {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Cart{
		ID:     "cart-001",
		UserID: "user-001",
		Items: []domain.CartItem{
			{
				Product: domain.Product{
					ID:         "sofa-1",
					Name:       "Monroe Sofa",
					Category:   "Living Room",
					Price:      1299,
					InStock:    true,
					StockCount: 15,
				},
				Quantity:      2,
				SelectedColor: "Gray",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestCartRepository_Get_Success(t *testing.T) {
	repo, mr := setupCartRepo(t)

	cart := sampleCart()
	data, err := json.Marshal(cartEnvelope{SchemaVersion: cartSchemaVersion, Cart: cart})
	require.NoError(t, err)

	// Set data directly in miniredis.
	require.NoError(t, mr.Set("cart:"+cart.ID, string(data)))

	got, err := repo.Get(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.UserID, got.UserID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "sofa-1", got.Items[0].Product.ID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Gray", got.Items[0].SelectedColor)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupCartRepo(t)

	got, err := repo.Get(context.Background(), "nonexistent-cart")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Get_InvalidJSON(t *testing.T) {
	repo, mr := setupCartRepo(t)

	// Corrupt payloads are discarded and reported as not found.
	require.NoError(t, mr.Set("cart:cart-bad", "{{not-valid-json"))

	got, err := repo.Get(context.Background(), "cart-bad")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, mr.Exists("cart:cart-bad"))
}

func TestCartRepository_Get_LegacyPayloadMigrates(t *testing.T) {
	repo, mr := setupCartRepo(t)

	// Payload written before the versioned envelope existed.
	cart := sampleCart()
	data, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:"+cart.ID, string(data)))

	got, err := repo.Get(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "sofa-1", got.Items[0].Product.ID)
}

func TestCartRepository_Get_FutureSchemaVersionResets(t *testing.T) {
	repo, mr := setupCartRepo(t)

	cart := sampleCart()
	data, err := json.Marshal(cartEnvelope{SchemaVersion: cartSchemaVersion + 1, Cart: cart})
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:"+cart.ID, string(data)))

	got, err := repo.Get(context.Background(), cart.ID)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, mr.Exists("cart:"+cart.ID))
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestCartRepository_Save_Success(t *testing.T) {
	repo, mr := setupCartRepo(t)

	cart := sampleCart()
	err := repo.Save(context.Background(), cart)
	require.NoError(t, err)

	// Verify key exists in Redis.
	assert.True(t, mr.Exists("cart:"+cart.ID))

	// Verify the payload carries the envelope.
	raw, err := mr.Get("cart:" + cart.ID)
	require.NoError(t, err)

	var stored cartEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, cartSchemaVersion, stored.SchemaVersion)
	require.NotNil(t, stored.Cart)
	assert.Equal(t, cart.ID, stored.Cart.ID)
	require.Len(t, stored.Cart.Items, 1)
	assert.Equal(t, "sofa-1", stored.Cart.Items[0].Product.ID)
}

func TestCartRepository_Save_TTL(t *testing.T) {
	repo, mr := setupCartRepo(t)

	cart := sampleCart()
	err := repo.Save(context.Background(), cart)
	require.NoError(t, err)

	ttl := mr.TTL("cart:" + cart.ID)
	// TTL should be approximately 24 hours (allow some margin for test execution).
	assert.True(t, ttl > 23*time.Hour, "expected TTL > 23h, got %v", ttl)
	assert.True(t, ttl <= 24*time.Hour, "expected TTL <= 24h, got %v", ttl)
}

func TestCartRepository_Save_RoundTrip(t *testing.T) {
	repo, _ := setupCartRepo(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Get(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.UserID, got.UserID)
	assert.Equal(t, cart.Items, got.Items)
	assert.Equal(t, cart.Total(), got.Total())
	assert.Equal(t, cart.ItemCount(), got.ItemCount())
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestCartRepository_Delete_Success(t *testing.T) {
	repo, mr := setupCartRepo(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))
	require.True(t, mr.Exists("cart:"+cart.ID))

	err := repo.Delete(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists("cart:"+cart.ID))
}

func TestCartRepository_Delete_Absent(t *testing.T) {
	repo, _ := setupCartRepo(t)

	// Deleting an absent cart is not an error.
	err := repo.Delete(context.Background(), "nonexistent-cart")
	assert.NoError(t, err)
}
