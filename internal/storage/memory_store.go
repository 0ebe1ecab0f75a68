package storage

import (
	"context"
	"sync"
	"time"

	apperrors "dream-diary-api/pkg/app_errors"
)

type MemoryStore struct {
	mu      sync.RWMutex
	data    map[string][]byte
	expires map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:    make(map[string][]byte),
		expires: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok || s.expiredLocked(key, time.Now()) {
		return nil, apperrors.ErrKeyNotFound
	}
	// 回傳副本，避免呼叫端改到內部資料
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *MemoryStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range entries {
		s.data[key] = append([]byte(nil), value...)
		delete(s.expires, key)
	}
	return nil
}

func (s *MemoryStore) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if _, ok := s.data[key]; ok && !s.expiredLocked(key, now) {
		return false, nil
	}
	s.data[key] = append([]byte(nil), value...)
	if ttl > 0 {
		s.expires[key] = now.Add(ttl)
	} else {
		delete(s.expires, key)
	}
	return true, nil
}

func (s *MemoryStore) expiredLocked(key string, now time.Time) bool {
	expiresAt, ok := s.expires[key]
	return ok && !now.Before(expiresAt)
}
