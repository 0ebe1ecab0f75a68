package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/storage"
	apperrors "dream-diary-api/pkg/app_errors"
)

const subscriptionKey = "user_subscription"

type SubscriptionRepository interface {
	// Find 沒有訂閱紀錄時回傳 nil, nil
	Find(ctx context.Context, userID string) (*model.Subscription, error)
	Save(ctx context.Context, subscription *model.Subscription) error
}

type SubscriptionRepositoryImpl struct {
	store storage.Store
}

func NewSubscriptionRepository(store storage.Store) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{store: store}
}

func (r *SubscriptionRepositoryImpl) Find(ctx context.Context, userID string) (*model.Subscription, error) {
	raw, err := r.store.Get(ctx, userKey(userID, subscriptionKey))
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageFailure("load subscription", err)
	}

	var subscription model.Subscription
	if err := json.Unmarshal(raw, &subscription); err != nil {
		return nil, storageFailure("decode subscription", err)
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) Save(ctx context.Context, subscription *model.Subscription) error {
	if subscription == nil || subscription.UserID == "" {
		return apperrors.ErrInvalidInput
	}
	raw, err := json.Marshal(subscription)
	if err != nil {
		return fmt.Errorf("encode subscription: %w", err)
	}
	if err := r.store.Set(ctx, userKey(subscription.UserID, subscriptionKey), raw); err != nil {
		return storageFailure("save subscription", err)
	}
	return nil
}
