package provider

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"dream-diary-api/config"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/logger"

	"go.uber.org/zap"
)

const (
	AdProviderMock     = "mock"
	AdProviderDisabled = "disabled"
)

// AdProvider 獎勵型廣告；ShowRewardedAd 回傳 true 代表使用者看完，可換一張票
type AdProvider interface {
	LoadAd(ctx context.Context) error
	IsAdReady(ctx context.Context) (bool, error)
	ShowRewardedAd(ctx context.Context) (bool, error)
}

func NewAdProvider(cfg *config.ProvidersConfig) (AdProvider, error) {
	switch cfg.AdProvider {
	case AdProviderMock:
		return NewMockAdProvider(cfg.MockAdCompletion, cfg.MockAdMinDelay, cfg.MockAdMaxDelay), nil
	case AdProviderDisabled:
		return DisabledAdProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown ad provider %q", cfg.AdProvider)
	}
}

// MockAdProvider 開發用：模擬載入與觀看時間，依完成率決定使用者是否看完
type MockAdProvider struct {
	mu             sync.Mutex
	loaded         bool
	completionRate float64
	minDelay       time.Duration
	maxDelay       time.Duration
}

func NewMockAdProvider(completionRate float64, minDelay, maxDelay time.Duration) *MockAdProvider {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &MockAdProvider{
		completionRate: completionRate,
		minDelay:       minDelay,
		maxDelay:       maxDelay,
	}
}

func (p *MockAdProvider) LoadAd(ctx context.Context) error {
	if err := sleep(ctx, p.minDelay/5); err != nil {
		return err
	}
	p.mu.Lock()
	p.loaded = true
	p.mu.Unlock()
	return nil
}

func (p *MockAdProvider) IsAdReady(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded, nil
}

func (p *MockAdProvider) ShowRewardedAd(ctx context.Context) (bool, error) {
	ready, _ := p.IsAdReady(ctx)
	if !ready {
		if err := p.LoadAd(ctx); err != nil {
			return false, err
		}
	}

	duration := p.minDelay
	if span := p.maxDelay - p.minDelay; span > 0 {
		duration += time.Duration(rand.Int64N(int64(span)))
	}
	if err := sleep(ctx, duration); err != nil {
		return false, err
	}

	// 看完一次廣告即消耗
	p.mu.Lock()
	p.loaded = false
	p.mu.Unlock()

	completed := rand.Float64() < p.completionRate
	logger.WithComponent("provider").Debug("mock rewarded ad finished",
		zap.Duration("duration", duration),
		zap.Bool("completed", completed),
	)
	return completed, nil
}

// DisabledAdProvider 尚未串接廣告 SDK 的環境使用
type DisabledAdProvider struct{}

func (DisabledAdProvider) LoadAd(ctx context.Context) error {
	return apperrors.ErrAdUnavailable
}

func (DisabledAdProvider) IsAdReady(ctx context.Context) (bool, error) {
	return false, nil
}

func (DisabledAdProvider) ShowRewardedAd(ctx context.Context) (bool, error) {
	return false, apperrors.ErrAdUnavailable
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
