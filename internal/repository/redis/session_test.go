package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

func setupSessionRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewSessionRepository(client, time.Hour)
	return repo, mr
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo, mr := setupSessionRepo(t)

	user := &domain.User{
		ID:    "user-001",
		Name:  "Admin User",
		Email: "admin@furnworld.com",
		Role:  domain.RoleAdmin,
	}

	err := repo.Save(context.Background(), "tok-123", user)
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:tok-123"))

	got, err := repo.Get(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupSessionRepo(t)

	got, err := repo.Get(context.Background(), "unknown-token")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionRepository_Save_TTL(t *testing.T) {
	repo, mr := setupSessionRepo(t)

	user := &domain.User{ID: "user-001", Role: domain.RoleCustomer}
	require.NoError(t, repo.Save(context.Background(), "tok-ttl", user))

	ttl := mr.TTL("session:tok-ttl")
	assert.True(t, ttl > 59*time.Minute, "expected TTL > 59m, got %v", ttl)
	assert.True(t, ttl <= time.Hour, "expected TTL <= 1h, got %v", ttl)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mr := setupSessionRepo(t)

	user := &domain.User{ID: "user-001", Role: domain.RoleCustomer}
	require.NoError(t, repo.Save(context.Background(), "tok-del", user))
	require.True(t, mr.Exists("session:tok-del"))

	require.NoError(t, repo.Delete(context.Background(), "tok-del"))
	assert.False(t, mr.Exists("session:tok-del"))

	// Idempotent.
	assert.NoError(t, repo.Delete(context.Background(), "tok-del"))
}
