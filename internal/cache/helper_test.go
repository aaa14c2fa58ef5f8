package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "a", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "a", Count: 3}, got)
}

func TestAside(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "fetched", Count: calls}
			return nil
		}
	}

	t.Run("miss fetches and stores", func(t *testing.T) {
		var got payload
		require.NoError(t, Aside(ctx, "aside", &got, time.Minute, fetch(&got)))
		assert.Equal(t, 1, calls)
		assert.True(t, mr.Exists("aside"))
	})

	t.Run("hit skips fetch", func(t *testing.T) {
		var got payload
		require.NoError(t, Aside(ctx, "aside", &got, time.Minute, fetch(&got)))
		assert.Equal(t, 1, calls)
		assert.Equal(t, "fetched", got.Name)
	})

	t.Run("invalidation forces refetch", func(t *testing.T) {
		Invalidate(ctx, "aside")
		var got payload
		require.NoError(t, Aside(ctx, "aside", &got, time.Minute, fetch(&got)))
		assert.Equal(t, 2, calls)
	})

	t.Run("fetch error propagates and stores nothing", func(t *testing.T) {
		var got payload
		err := Aside(ctx, "broken", &got, time.Minute, func() error {
			return errors.New("db down")
		})
		assert.Error(t, err)
		assert.False(t, mr.Exists("broken"))
	})
}

func TestAsideWithoutRedis(t *testing.T) {
	SetClient(nil)

	var got payload
	err := Aside(context.Background(), "no-redis", &got, time.Minute, func() error {
		got = payload{Name: "direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got.Name)
}
