package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	d, err := New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		CloseClient: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close(context.Background()) })
	return d, mr
}

func TestNewRejectsNilClient(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNilClient)
}

func TestRedisMissAndHit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	d, mr := newTestDriver(t)

	_, ok, err := d.GetItem(ctx, "user:1")
	require.NoError(err)
	require.False(ok)

	require.NoError(d.SetItem(ctx, "user:1", `{"id":1}`))
	v, ok, err := d.GetItem(ctx, "user:1")
	require.NoError(err)
	require.True(ok)
	require.Equal(`{"id":1}`, v)

	got, err := mr.Get("user:1")
	require.NoError(err)
	require.Equal(`{"id":1}`, got)
	require.Zero(mr.TTL("user:1"))
}

func TestRedisBinarySafe(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	d, _ := newTestDriver(t)

	raw := string([]byte{0x00, 0xff, 0x10, 0x00})
	require.NoError(d.SetItem(ctx, "bin", raw))
	v, ok, err := d.GetItem(ctx, "bin")
	require.NoError(err)
	require.True(ok)
	require.Equal(raw, v)
}

func TestRedisServerErrorPropagates(t *testing.T) {
	ctx := context.Background()
	d, mr := newTestDriver(t)

	mr.SetError("LOADING")
	_, ok, err := d.GetItem(ctx, "k")
	require.Error(t, err)
	require.False(t, ok)
	require.Error(t, d.SetItem(ctx, "k", "v"))
}

func TestRedisCloseIsIdempotent(t *testing.T) {
	d, _ := newTestDriver(t)
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))
}

func TestRedisPrefixIsolatesKeys(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	a, err := New(Config{Client: client, Prefix: "a:"})
	require.NoError(err)
	b, err := New(Config{Client: client, Prefix: "b:"})
	require.NoError(err)

	require.NoError(a.SetItem(ctx, "k", "from-a"))
	_, ok, err := b.GetItem(ctx, "k")
	require.NoError(err)
	require.False(ok)

	got, err := mr.Get("a:k")
	require.NoError(err)
	require.Equal("from-a", got)

	// not owned: Close leaves the shared client usable
	require.NoError(a.Close(ctx))
	require.NoError(b.SetItem(ctx, "k", "from-b"))
}

func TestRedisSetClearsForeignTTL(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	d, mr := newTestDriver(t)

	require.NoError(mr.Set("k", "old"))
	mr.SetTTL("k", time.Minute)
	require.NoError(d.SetItem(ctx, "k", "new"))
	require.Zero(mr.TTL("k"))
}
