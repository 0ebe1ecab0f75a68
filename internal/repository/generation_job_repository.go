package repository

import (
	"context"
	"fmt"
	"time"

	"dream-diary-api/internal/storage"
)

// 標記保留的時間要比 queue 可能重送的時間長
const jobMarkerTTL = 7 * 24 * time.Hour

type GenerationJobRepository interface {
	// MarkStarted 標記任務開始執行；回傳 false 表示同一個任務已經開始過
	MarkStarted(ctx context.Context, jobID string) (bool, error)
}

type GenerationJobRepositoryImpl struct {
	store storage.Store
}

func NewGenerationJobRepository(store storage.Store) GenerationJobRepository {
	return &GenerationJobRepositoryImpl{store: store}
}

func jobStartedKey(jobID string) string {
	return fmt.Sprintf("job:%s:started", jobID)
}

func (r *GenerationJobRepositoryImpl) MarkStarted(ctx context.Context, jobID string) (bool, error) {
	startedAt := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	ok, err := r.store.SetIfAbsent(ctx, jobStartedKey(jobID), startedAt, jobMarkerTTL)
	if err != nil {
		return false, storageFailure("mark job started", err)
	}
	return ok, nil
}
