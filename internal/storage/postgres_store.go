package storage

import (
	"context"
	"errors"
	"time"

	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore 以 kv_entries 資料表保存帳本，schema 見 database.EnsureSchema
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const upsertEntryQuery = `
	INSERT INTO kv_entries (key, value, updated_at, expires_at)
	VALUES ($1, $2, $3, NULL)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at, expires_at = NULL
`

// 既有資料只有在已過期時才會被覆蓋
const insertIfAbsentQuery = `
	INSERT INTO kv_entries (key, value, updated_at, expires_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at
	WHERE kv_entries.expires_at IS NOT NULL AND kv_entries.expires_at <= EXCLUDED.updated_at
`

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_entries
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, upsertEntryQuery, key, value, time.Now().UTC())
	return err
}

func (s *PostgresStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	for key, value := range entries {
		if _, err := tx.Exec(ctx, upsertEntryQuery, key, value, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	now := time.Now().UTC()
	var expiresAt *time.Time
	if ttl > 0 {
		t := now.Add(ttl)
		expiresAt = &t
	}

	tag, err := s.pool.Exec(ctx, insertIfAbsentQuery, key, value, now, expiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
