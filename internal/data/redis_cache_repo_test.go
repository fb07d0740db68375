package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirdanish6594/Rentr/internal/testutil"
)

func TestRedisCacheRepo_SetGetDelete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	err := repo.Set(ctx, "contractor:profile:101", []byte(`{"id":101}`), time.Minute)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "contractor:profile:101")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":101}`), got)

	deleted, err := repo.Delete(ctx, "contractor:profile:101")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "contractor:profile:101")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRedisCacheRepo_Get_MissReturnsNil(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)

	got, err := repo.Get(context.Background(), "contractor:profile:does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_Set_Expiry(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	err := repo.Set(ctx, "contractor:profile:ttl", []byte("x"), 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	got, err := repo.Get(ctx, "contractor:profile:ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_EmptyKeyRejected(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	require.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))

	_, err := repo.Get(ctx, "")
	require.Error(t, err)

	_, err = repo.Delete(ctx, "")
	require.Error(t, err)
}
