package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/history"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/memory"
)

func newService(t *testing.T) *history.Service {
	t.Helper()
	return history.NewService(memory.NewHistoryRepository(memory.NewStore()))
}

func TestService_RecordYListaOrdenada(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Record(ctx, &entity.ProcessingRecord{ID: "a", FileName: "a.pdf", ProcessedAt: base}))
	require.NoError(t, svc.Record(ctx, &entity.ProcessingRecord{ID: "b", FileName: "b.pdf", ProcessedAt: base.Add(time.Hour)}))

	recs, err := svc.List(ctx, 0, -1)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "a", recs[1].ID)
}

func TestService_RecordSinID(t *testing.T) {
	svc := newService(t)
	err := svc.Record(context.Background(), &entity.ProcessingRecord{ID: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Record(context.Background(), nil), domain.ErrInvalidInput)
}

func TestService_GetDeleteClear(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	require.NoError(t, svc.Record(ctx, &entity.ProcessingRecord{ID: "x", ProcessedAt: time.Now()}))

	rec, err := svc.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", rec.ID)

	_, err = svc.Get(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "x"))
	assert.ErrorIs(t, svc.Delete(ctx, "x"), domain.ErrNotFound)

	require.NoError(t, svc.Record(ctx, &entity.ProcessingRecord{ID: "y", ProcessedAt: time.Now()}))
	require.NoError(t, svc.Clear(ctx))
	recs, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
