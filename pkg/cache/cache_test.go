package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestGetSet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var got map[string]int
	require.NoError(t, svc.Get(ctx, "k", &got))
	assert.Equal(t, 1, got["a"])

	require.NoError(t, svc.Delete(ctx, "k"))
	assert.ErrorIs(t, svc.Get(ctx, "k", &got), ErrMiss)
}

func TestGet_Miss(t *testing.T) {
	svc, _ := newTestService(t)

	var got string
	err := svc.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestBoardCache(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetBoard(ctx, 3, true))
	assert.True(t, mr.Exists("board:3"))
	assert.Equal(t, TTLBoard, mr.TTL("board:3"))

	var loginRequired bool
	require.NoError(t, svc.GetBoard(ctx, 3, &loginRequired))
	assert.True(t, loginRequired)

	require.NoError(t, svc.InvalidateBoard(ctx, 3))
	assert.ErrorIs(t, svc.GetBoard(ctx, 3, &loginRequired), ErrMiss)
}

func TestBoardCache_Expires(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetBoard(ctx, 1, false))
	mr.FastForward(TTLBoard + time.Second)

	var loginRequired bool
	assert.ErrorIs(t, svc.GetBoard(ctx, 1, &loginRequired), ErrMiss)
}

func TestNilClient(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	assert.False(t, svc.IsAvailable())
	assert.ErrorIs(t, svc.Ping(ctx), ErrUnavailable)
	assert.NoError(t, svc.Set(ctx, "k", 1, time.Minute))
	assert.NoError(t, svc.Delete(ctx, "k"))

	var v int
	assert.ErrorIs(t, svc.Get(ctx, "k", &v), ErrUnavailable)
}
