package session

import (
	"context"
	"testing"
	"time"

	"solarad/config"
	"solarad/internal/domain/entity"
	"solarad/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (service.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour}}

	return NewRedisStore(client, cfg), mr
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	identity := entity.Identity{
		ID:       uuid.New(),
		Username: "employee1",
		FullName: "พนักงาน ทดสอบ",
		Role:     entity.RoleEmployee,
	}

	id, err := store.Create(ctx, identity)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, identity, *got)
}

func TestRedisStore_GetUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_GetRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)

	// Let most of the window elapse, then touch the session.
	mr.FastForward(50 * time.Minute)

	_, err = store.Get(ctx, id)
	require.NoError(t, err)

	// Past the original expiry but inside the refreshed window.
	mr.FastForward(30 * time.Minute)

	_, err = store.Get(ctx, id)
	assert.NoError(t, err)
}

func TestRedisStore_ExpiresWhenIdle(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, entity.Identity{ID: uuid.New(), Role: entity.RoleEmployee})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_Destroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, entity.Identity{ID: uuid.New(), Role: entity.RoleEmployee})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Destroying again is a no-op.
	assert.NoError(t, store.Destroy(ctx, id))
}
