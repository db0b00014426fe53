package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devneill/dinnernotonyourown-10/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuildsOnceThenServesCached(t *testing.T) {
	c := cache.New[string](cache.Options{Name: "test", TTL: time.Minute, MaxItems: 16})

	calls := 0
	build := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	ctx := context.Background()
	v, err := c.Get(ctx, []byte("k1"), build)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.Get(ctx, []byte("k1"), build)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	// คนละ key ต้อง build ใหม่
	_, err = c.Get(ctx, []byte("k2"), build)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetPropagatesBuildError(t *testing.T) {
	c := cache.New[int](cache.Options{Name: "test", TTL: time.Minute, MaxItems: 16, SyncUpdate: true})

	boom := errors.New("upstream down")
	_, err := c.Get(context.Background(), []byte("k"), func(ctx context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}
