package repositories

import (
	"chat-relay/errors"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the way the hosted store expects: TLS when useTLS is set.
func NewRedisClient(addr, password string, useTLS bool) *redis.Client {
	options := &redis.Options{Addr: addr, Password: password}
	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(options)
}

// RedisDedupeRepository keeps processed payment markers in redis.
// Keys are the bare transaction ids unless a prefix is given.
type RedisDedupeRepository struct {
	rdb    redis.Cmdable
	log    *slog.Logger
	prefix string
}

func NewRedisDedupeRepository(rdb redis.Cmdable, log *slog.Logger, prefix string) RedisDedupeRepository {
	return RedisDedupeRepository{rdb: rdb, log: log, prefix: prefix}
}

func (r RedisDedupeRepository) IsProcessed(ctx context.Context, txID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.prefix+txID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// MarkProcessed relies on SET NX so that only one caller ever creates the marker.
func (r RedisDedupeRepository) MarkProcessed(ctx context.Context, txID string) (bool, error) {
	created, err := r.rdb.SetNX(ctx, r.prefix+txID, processedValue, 0).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	if !created {
		r.log.Debug("Dedupe marker already present", "transaction_id", txID)
	}
	return created, nil
}
