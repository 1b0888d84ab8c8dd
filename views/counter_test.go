package views

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisCounter(t *testing.T) {
	_, rdb := newRedis(t)
	c := New(rdb)
	ctx := context.Background()

	require.NoError(t, c.Incr(ctx, "all"))
	require.NoError(t, c.Incr(ctx, "all"))
	require.NoError(t, c.Incr(ctx, "job"))

	counts, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"all": 2, "job": 1}, counts)
}

func TestRedisCounter_Empty(t *testing.T) {
	_, rdb := newRedis(t)

	counts, err := NewRedisCounter(rdb).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRedisCounter_BadValue(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.HSet(hashKey, "job", "many")

	_, err := NewRedisCounter(rdb).All(context.Background())
	assert.ErrorContains(t, err, "view count for job")
}

func TestRedisCounter_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	assert.Error(t, NewRedisCounter(rdb).Incr(context.Background(), "all"))
}

func TestNop(t *testing.T) {
	c := New(nil)
	assert.IsType(t, Nop{}, c)
	assert.NoError(t, c.Incr(context.Background(), "all"))
	counts, err := c.All(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, counts)
}
