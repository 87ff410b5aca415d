package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

const (
	recordPrefix = "historico:registro:"
	indexKey     = "historico:indice"
)

// HistoryRepo historial en Redis: una clave JSON por registro (con TTL) y un sorted set
// ordenado por fecha de procesamiento como índice.
type HistoryRepo struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewHistoryRepository ttl <= 0 guarda los registros sin expiración.
func NewHistoryRepository(rdb redis.Cmdable, ttl time.Duration) *HistoryRepo {
	return &HistoryRepo{rdb: rdb, ttl: ttl}
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func recordKey(id string) string { return recordPrefix + id }

func (r *HistoryRepo) Save(ctx context.Context, rec *entity.ProcessingRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}
	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}
	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, recordKey(rec.ID), payload, ttl)
		p.ZAdd(ctx, indexKey, redis.Z{Score: float64(rec.ProcessedAt.UnixMilli()), Member: rec.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save history record: %w", err)
	}
	return nil
}

// List los miembros del índice cuya clave ya expiró se limpian al vuelo y la página se completa
// con los siguientes del índice.
func (r *HistoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProcessingRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	out := make([]*entity.ProcessingRecord, 0, limit)
	for len(out) < limit {
		// Los expirados ya se quitaron del índice: los válidos leídos ocupan offset..offset+len(out)-1.
		from := int64(offset + len(out))
		ids, err := r.rdb.ZRevRange(ctx, indexKey, from, from+int64(limit-len(out))-1).Result()
		if err != nil {
			return nil, fmt.Errorf("list history index: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		recs, stale, err := r.load(ctx, ids)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
		if len(stale) == 0 {
			break
		}
		if err := r.rdb.ZRem(ctx, indexKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("prune history index: %w", err)
		}
	}
	return out, nil
}

// load lee los registros de ids; devuelve aparte los IDs cuya clave ya no existe.
func (r *HistoryRepo) load(ctx context.Context, ids []string) ([]*entity.ProcessingRecord, []any, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(id)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("list history records: %w", err)
	}
	out := make([]*entity.ProcessingRecord, 0, len(vals))
	var stale []any
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var rec entity.ProcessingRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, nil, fmt.Errorf("decode history record %s: %w", ids[i], err)
		}
		out = append(out, &rec)
	}
	return out, stale, nil
}

func (r *HistoryRepo) Get(ctx context.Context, id string) (*entity.ProcessingRecord, error) {
	s, err := r.rdb.Get(ctx, recordKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get history record: %w", err)
	}
	var rec entity.ProcessingRecord
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return nil, fmt.Errorf("decode history record %s: %w", id, err)
	}
	return &rec, nil
}

func (r *HistoryRepo) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, recordKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	removed, err := r.rdb.ZRem(ctx, indexKey, id).Result()
	if err != nil {
		return fmt.Errorf("delete history index: %w", err)
	}
	if n == 0 && removed == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	ids, err := r.rdb.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("clear history index: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, recordKey(id))
	}
	keys = append(keys, indexKey)
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
