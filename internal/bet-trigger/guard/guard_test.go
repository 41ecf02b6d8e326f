package guard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T) (*Guard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, time.Hour), mr
}

func TestAcquireOnlyOnce(t *testing.T) {
	g, _ := newGuard(t)
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "daniel taro|chan hong seong")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Acquire(ctx, "daniel taro|chan hong seong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReleaseAllowsRetry(t *testing.T) {
	g, _ := newGuard(t)
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "a|b")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, g.Release(ctx, "a|b"))

	ok, err = g.Acquire(ctx, "a|b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkerExpires(t *testing.T) {
	g, mr := newGuard(t)
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "a|b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Hour, mr.TTL("autobet:placed:a|b"))

	mr.FastForward(time.Hour + time.Second)

	ok, err = g.Acquire(ctx, "a|b")
	require.NoError(t, err)
	assert.True(t, ok)
}
