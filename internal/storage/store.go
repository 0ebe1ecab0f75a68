// Package storage 是帳本使用的 key-value 持久層。
//
// Get 在 key 不存在時回傳 apperrors.ErrKeyNotFound，其他錯誤一律視為儲存失敗，
// 呼叫端不可把失敗當成「沒有資料」。
package storage

import (
	"context"
	"fmt"
	"time"

	"dream-diary-api/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Store interface {
	// 讀取：不存在時回傳 ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// 寫入單一 key
	Set(ctx context.Context, key string, value []byte) error
	// 一次寫入多個 key，全部成功或全部不生效
	SetMany(ctx context.Context, entries map[string][]byte) error
	// 只在 key 不存在或已過期時寫入，回傳是否由這次呼叫寫入；ttl <= 0 表示不過期
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}

// NewStore 依設定選擇 driver；pool / rdb 只在對應 driver 需要時使用
func NewStore(cfg *config.StorageConfig, pool *pgxpool.Pool, rdb *redis.Client) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("storage driver %q requires a redis client", cfg.Driver)
		}
		return NewRedisStore(rdb), nil
	case DriverPostgres:
		if pool == nil {
			return nil, fmt.Errorf("storage driver %q requires a database pool", cfg.Driver)
		}
		return NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
