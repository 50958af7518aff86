package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "blockinsight7000:bridge"

// Redis stores records as JSON values with a per-source index list.
type Redis struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewRedis connects to url and verifies the connection with PING.
func NewRedis(ctx context.Context, url string, logger *zap.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisWithClient(client, defaultKeyPrefix, logger), nil
}

// NewRedisWithClient wraps an existing client. Keys are namespaced by prefix.
func NewRedisWithClient(client *redis.Client, prefix string, logger *zap.Logger) *Redis {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &Redis{
		client: client,
		prefix: prefix,
		logger: logger.Named("records"),
		now:    time.Now,
	}
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) recordKey(id model.RecordID) string {
	return fmt.Sprintf("%s:record:%s", r.prefix, id)
}

func (r *Redis) sourceKey(tx chainhash.Hash) string {
	return fmt.Sprintf("%s:source:%s", r.prefix, tx)
}

// IndexEffect stores effect as a new active record and appends it to the source index.
func (r *Redis) IndexEffect(ctx context.Context, effect model.Effect, sourceTx chainhash.Hash, sourceHeight uint64) (model.RecordID, error) {
	rec, err := newRecord(effect, sourceTx, sourceHeight, r.now())
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SetNX(ctx, r.recordKey(rec.ID), raw, 0)
		p.RPush(ctx, r.sourceKey(sourceTx), string(rec.ID))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("store record %s: %w", rec.ID, err)
	}
	r.logger.Debug("record indexed",
		zap.String("id", string(rec.ID)), zap.String("type", rec.Type), zap.Stringer("source_tx", sourceTx))
	return rec.ID, nil
}

// RecordExists reports whether id was ever stored, deactivated or not.
func (r *Redis) RecordExists(ctx context.Context, id model.RecordID) (bool, error) {
	n, err := r.client.Exists(ctx, r.recordKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("record exists %s: %w", id, err)
	}
	return n == 1, nil
}

// GetRecord returns the record with id.
func (r *Redis) GetRecord(ctx context.Context, id model.RecordID) (Record, bool, error) {
	raw, err := r.client.Get(ctx, r.recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("get record %s: %w", id, err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("decode record %s: %w", id, err)
	}
	return rec, true, nil
}

// RecordsBySource returns the ids indexed from sourceTx in creation order.
func (r *Redis) RecordsBySource(ctx context.Context, sourceTx chainhash.Hash) ([]model.RecordID, error) {
	ids, err := r.client.LRange(ctx, r.sourceKey(sourceTx), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("records by source %s: %w", sourceTx, err)
	}
	out := make([]model.RecordID, len(ids))
	for i, id := range ids {
		out[i] = model.RecordID(id)
	}
	return out, nil
}

// Deactivate soft-deletes the record with an optimistic WATCH transaction.
func (r *Redis) Deactivate(ctx context.Context, id model.RecordID) error {
	key := r.recordKey(id)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return notFound(id)
		}
		if err != nil {
			return err
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		if rec.Status == StatusDeactivated {
			return alreadyDeactivated(id)
		}
		at := r.now().UTC()
		rec.Status = StatusDeactivated
		rec.DeactivatedAt = &at
		updated, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, updated, redis.KeepTTL)
			return nil
		})
		return err
	}

	const maxRetries = 3
	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("deactivate record %s: %w", id, err)
		}
		return nil
	}
	return fmt.Errorf("deactivate record %s: %w", id, redis.TxFailedErr)
}
