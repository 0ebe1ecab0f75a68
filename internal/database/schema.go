package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 夢境日記、生圖結果與帳本 KV (STORAGE_DRIVER=postgres 時使用)
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dreams (
		id SERIAL PRIMARY KEY,
		dream_id UUID NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		has_generated_image BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dreams_user_id ON dreams (user_id) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS dream_images (
		id SERIAL PRIMARY KEY,
		image_id UUID NOT NULL UNIQUE,
		dream_id INTEGER NOT NULL REFERENCES dreams (id),
		url TEXT NOT NULL,
		prompt TEXT NOT NULL,
		style TEXT NOT NULL,
		quality TEXT NOT NULL,
		cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE kv_entries ADD COLUMN IF NOT EXISTS expires_at TIMESTAMPTZ`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
