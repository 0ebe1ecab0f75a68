package repository_test

import (
	"context"
	"errors"
	"time"
)

var errBackendDown = errors.New("connection refused")

// failingStore 模擬後端不可用的 Store
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
