package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/storage"
	apperrors "dream-diary-api/pkg/app_errors"
)

const (
	ticketsKey       = "tickets"
	lastAdWatchedKey = "last_ad_watched"
)

// LedgerRepository 讀寫使用者的票券帳本與最後看廣告時間
type LedgerRepository interface {
	LoadTickets(ctx context.Context, userID string) ([]*model.Ticket, error)
	LoadLastAdWatched(ctx context.Context, userID string) (*time.Time, error)
	SaveTickets(ctx context.Context, userID string, tickets []*model.Ticket) error
	// 票券與冷卻時間一起寫入，讀取端不會看到只更新其中一項的狀態
	SaveTicketsAndAdWatched(ctx context.Context, userID string, tickets []*model.Ticket, watchedAt time.Time) error
}

type LedgerRepositoryImpl struct {
	store storage.Store
}

func NewLedgerRepository(store storage.Store) LedgerRepository {
	return &LedgerRepositoryImpl{store: store}
}

// 使用者的 key，例如 user:42:tickets
func userKey(userID string, name string) string {
	return fmt.Sprintf("user:%s:%s", userID, name)
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorageFailure, err)
}

func (r *LedgerRepositoryImpl) LoadTickets(ctx context.Context, userID string) ([]*model.Ticket, error) {
	raw, err := r.store.Get(ctx, userKey(userID, ticketsKey))
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return []*model.Ticket{}, nil
	}
	if err != nil {
		return nil, storageFailure("load tickets", err)
	}

	tickets := make([]*model.Ticket, 0)
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, storageFailure("decode tickets", err)
	}
	return tickets, nil
}

func (r *LedgerRepositoryImpl) LoadLastAdWatched(ctx context.Context, userID string) (*time.Time, error) {
	raw, err := r.store.Get(ctx, userKey(userID, lastAdWatchedKey))
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageFailure("load last ad watched", err)
	}

	watchedAt, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return nil, storageFailure("decode last ad watched", err)
	}
	watchedAt = watchedAt.UTC()
	return &watchedAt, nil
}

func (r *LedgerRepositoryImpl) SaveTickets(ctx context.Context, userID string, tickets []*model.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("encode tickets: %w", err)
	}
	if err := r.store.Set(ctx, userKey(userID, ticketsKey), raw); err != nil {
		return storageFailure("save tickets", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) SaveTicketsAndAdWatched(ctx context.Context, userID string, tickets []*model.Ticket, watchedAt time.Time) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("encode tickets: %w", err)
	}
	err = r.store.SetMany(ctx, map[string][]byte{
		userKey(userID, ticketsKey):       raw,
		userKey(userID, lastAdWatchedKey): []byte(watchedAt.UTC().Format(time.RFC3339Nano)),
	})
	if err != nil {
		return storageFailure("save tickets and ad watched", err)
	}
	return nil
}
