package storage_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dream-diary-api/config"
	"dream-diary-api/internal/storage"
	"dream-diary-api/internal/testutil"
	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract 每個 driver 都要滿足的行為
func runStoreContract(t *testing.T, store storage.Store) {
	ctx := context.Background()
	prefix := "test:" + uuid.New().String() + ":"

	t.Run("Get - KeyNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, prefix+"missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
	})

	t.Run("Set then Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, prefix+"a", []byte(`{"v":1}`)))

		got, err := store.Get(ctx, prefix+"a")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":1}`), got)
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, prefix+"b", []byte("first")))
		require.NoError(t, store.Set(ctx, prefix+"b", []byte("second")))

		got, err := store.Get(ctx, prefix+"b")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("SetMany writes every key", func(t *testing.T) {
		err := store.SetMany(ctx, map[string][]byte{
			prefix + "tickets":         []byte("[]"),
			prefix + "last_ad_watched": []byte("2025-01-01T00:00:00Z"),
		})
		require.NoError(t, err)

		tickets, err := store.Get(ctx, prefix+"tickets")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(tickets))

		watched, err := store.Get(ctx, prefix+"last_ad_watched")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01T00:00:00Z", string(watched))
	})

	t.Run("SetIfAbsent only first writer wins", func(t *testing.T) {
		ok, err := store.SetIfAbsent(ctx, prefix+"marker", []byte("first"), time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.SetIfAbsent(ctx, prefix+"marker", []byte("second"), time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.Get(ctx, prefix+"marker")
		require.NoError(t, err)
		assert.Equal(t, "first", string(got))
	})

	t.Run("SetIfAbsent keeps existing value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, prefix+"c", []byte("kept")))

		ok, err := store.SetIfAbsent(ctx, prefix+"c", []byte("other"), 0)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SetIfAbsent concurrent", func(t *testing.T) {
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := store.SetIfAbsent(ctx, prefix+"race", []byte("x"), time.Hour)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, storage.NewMemoryStore())
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := storage.NewMemoryStore()
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "k", []byte("v")), context.Canceled)
}

func TestMemoryStore_SetIfAbsentExpires(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	ok, err := store.SetIfAbsent(ctx, "marker", []byte("v1"), 20*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, err = store.Get(ctx, "marker")
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)

	ok, err = store.SetIfAbsent(ctx, "marker", []byte("v2"), 0)
	require.NoError(t, err)
	assert.True(t, ok)

	// Set 之後不再過期
	require.NoError(t, store.Set(ctx, "marker", []byte("v3")))
	got, err := store.Get(ctx, "marker")
	require.NoError(t, err)
	assert.Equal(t, "v3", string(got))
}

func TestRedisStore(t *testing.T) {
	_, rdb := testutil.NewMiniRedis(t)

	runStoreContract(t, storage.NewRedisStore(rdb))
}

func TestRedisStore_SetIfAbsentExpires(t *testing.T) {
	ctx := context.Background()
	mr, rdb := testutil.NewMiniRedis(t)
	store := storage.NewRedisStore(rdb)

	ok, err := store.SetIfAbsent(ctx, "marker", []byte("v1"), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = store.SetIfAbsent(ctx, "marker", []byte("v2"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStore_LiveServer(t *testing.T) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer cleanup()

	runStoreContract(t, storage.NewRedisStore(rdb))
}

func TestPostgresStore(t *testing.T) {
	pool, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		t.Skipf("database not available: %v", err)
	}
	defer cleanup()

	runStoreContract(t, storage.NewPostgresStore(pool))
}

func TestNewStore(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, err := storage.NewStore(&config.StorageConfig{Driver: storage.DriverMemory}, nil, nil)
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStore{}, store)
	})

	t.Run("Redis without client", func(t *testing.T) {
		_, err := storage.NewStore(&config.StorageConfig{Driver: storage.DriverRedis}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("Postgres without pool", func(t *testing.T) {
		_, err := storage.NewStore(&config.StorageConfig{Driver: storage.DriverPostgres}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, err := storage.NewStore(&config.StorageConfig{Driver: "etcd"}, nil, nil)
		assert.Error(t, err)
	})
}
