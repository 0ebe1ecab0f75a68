package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"dream-diary-api/internal/repository"
	"dream-diary-api/internal/service"
	"dream-diary-api/internal/storage"
	"dream-diary-api/pkg/clock"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

var errBackendDown = errors.New("connection refused")

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errBackendDown
}

func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errBackendDown
}

func (failingStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return errBackendDown
}

func (failingStore) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return false, errBackendDown
}

// writeFailingStore 讀取正常，打開 failWrites 後所有寫入都失敗
type writeFailingStore struct {
	*storage.MemoryStore
	failWrites atomic.Bool
}

func newWriteFailingStore() *writeFailingStore {
	return &writeFailingStore{MemoryStore: storage.NewMemoryStore()}
}

func (s *writeFailingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failWrites.Load() {
		return errBackendDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *writeFailingStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if s.failWrites.Load() {
		return errBackendDown
	}
	return s.MemoryStore.SetMany(ctx, entries)
}

func (s *writeFailingStore) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if s.failWrites.Load() {
		return false, errBackendDown
	}
	return s.MemoryStore.SetIfAbsent(ctx, key, value, ttl)
}

type testServices struct {
	clock         *clock.Fake
	store         storage.Store
	tickets       service.TicketService
	subscriptions service.SubscriptionService
	interviews    repository.InterviewRepository
}

// setupServices 使用 MemoryStore 與手動時鐘
func setupServices(t *testing.T) *testServices {
	t.Helper()
	clk := clock.NewFake(testNow)
	store := storage.NewMemoryStore()
	return &testServices{
		clock:         clk,
		store:         store,
		tickets:       service.NewTicketService(repository.NewLedgerRepository(store), clk),
		subscriptions: service.NewSubscriptionService(repository.NewSubscriptionRepository(store), clk),
		interviews:    repository.NewInterviewRepository(store),
	}
}
