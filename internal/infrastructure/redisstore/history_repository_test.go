package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/redisstore"
)

// newRepo usa un Redis en memoria (miniredis); con REDIS_TEST_ADDR definido usa ese servidor real.
func newRepo(t *testing.T) (*redisstore.HistoryRepo, *redis.Client) {
	t.Helper()
	ctx := context.Background()
	addr := os.Getenv("REDIS_TEST_ADDR")
	db := 15
	if addr == "" {
		addr = miniredis.RunT(t).Addr()
		db = 0
	}
	client, err := redisstore.NewClient(ctx, addr, "", db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := redisstore.NewHistoryRepository(client, time.Hour)
	require.NoError(t, repo.Clear(ctx))
	return repo, client
}

func saveSequence(t *testing.T, repo *redisstore.HistoryRepo, ids ...string) {
	t.Helper()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range ids {
		require.NoError(t, repo.Save(context.Background(), &entity.ProcessingRecord{
			ID: id, FileName: id + ".pdf", ProcessedAt: base.Add(time.Duration(i) * time.Minute), Success: true,
		}))
	}
}

func TestHistoryRedis_OrdenYBorrado(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	saveSequence(t, repo, "a", "b", "c")

	list, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a.pdf", got.FileName)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrNotFound)

	missing, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryRedis_PaginaSeCompletaTrasExpirados(t *testing.T) {
	repo, client := newRepo(t)
	ctx := context.Background()
	saveSequence(t, repo, "a", "b", "c", "d", "e")

	// Registros expirados cuyo miembro sigue en el índice.
	require.NoError(t, client.Del(ctx, "historico:registro:e", "historico:registro:c").Err())

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2, "la página no queda corta por los expirados")
	assert.Equal(t, "d", page[0].ID)
	assert.Equal(t, "b", page[1].ID)

	next, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "a", next[0].ID)

	n, err := client.ZCard(ctx, "historico:indice").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n, "los expirados se quitan del índice")
}
