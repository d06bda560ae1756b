package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localbiz/internal/adapters/observability"
	redisad "localbiz/internal/adapters/redis"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Ping(context.Background()))
	return c, mr
}

type entry struct {
	ID   string `json:"id"`
	Rank int    `json:"rank"`
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var miss []entry
	ok, err := c.Get(ctx, "catalog:bars:v1:abc", &miss)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "catalog:bars:v1:abc", []entry{{"b1", 1}, {"b2", 2}}, 60))
	var got []entry
	ok, err = c.Get(ctx, "catalog:bars:v1:abc", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []entry{{"b1", 1}, {"b2", 2}}, got)

	mr.FastForward(61 * time.Second)
	ok, err = c.Get(ctx, "catalog:bars:v1:abc", &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire with its TTL")
}

func TestCache_PurgeByPrefix(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	for _, k := range []string{"catalog:bars:v1:a", "catalog:bars:v1:b", "catalog:bars:v2:a", "catalog:cafes:v1:a"} {
		require.NoError(t, c.Set(ctx, k, 1, 60))
	}
	require.NoError(t, c.Purge(ctx, "catalog:bars:v1:"))

	assert.False(t, mr.Exists("catalog:bars:v1:a"))
	assert.False(t, mr.Exists("catalog:bars:v1:b"))
	assert.True(t, mr.Exists("catalog:bars:v2:a"))
	assert.True(t, mr.Exists("catalog:cafes:v1:a"))
}

func TestCache_GetErrorWhenDown(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()

	var v int
	_, err := c.Get(context.Background(), "k", &v)
	assert.Error(t, err)
}

func TestCache_PurgeCountsOnlyRealDeletes(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	dels := observability.CacheEvents.WithLabelValues("redis", "del")

	before := testutil.ToFloat64(dels)
	require.NoError(t, c.Purge(ctx, "catalog:hotels:none:"))
	assert.Equal(t, before, testutil.ToFloat64(dels), "nothing to delete")

	require.NoError(t, c.Set(ctx, "catalog:hotels:v1:a", 1, 60))
	require.NoError(t, c.Purge(ctx, "catalog:hotels:v1:"))
	assert.Equal(t, before+1, testutil.ToFloat64(dels))
}
