package service

import (
	"context"

	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/model"
	"dream-diary-api/internal/provider"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RewardService interface {
	// 播放獎勵廣告，看完才發票
	ClaimAdReward(ctx context.Context, userID string) (*model.AdRewardResult, error)
	PreloadAd(ctx context.Context) error
}

type RewardServiceImpl struct {
	tickets TicketService
	ads     provider.AdProvider
}

func NewRewardService(tickets TicketService, ads provider.AdProvider) RewardService {
	return &RewardServiceImpl{tickets: tickets, ads: ads}
}

func (s *RewardServiceImpl) ClaimAdReward(ctx context.Context, userID string) (*model.AdRewardResult, error) {
	log := logger.WithUser("service", userID)

	// 1. 冷卻中就不播廣告
	status, err := s.tickets.GetStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.CanWatchAd {
		metrics.AdRewardsDeclined.WithLabelValues("cooldown").Inc()
		return nil, apperrors.ErrCooldownActive
	}

	// 2. 廣告尚未載入就先載入
	ready, err := s.ads.IsAdReady(ctx)
	if err != nil {
		return nil, err
	}
	if !ready {
		if err := s.ads.LoadAd(ctx); err != nil {
			log.Warn("load ad failed", zap.Error(err))
			return nil, err
		}
	}

	// 3. 播放廣告
	completed, err := s.ads.ShowRewardedAd(ctx)
	if err != nil {
		log.Warn("show rewarded ad failed", zap.Error(err))
		return nil, err
	}
	if !completed {
		metrics.AdRewardsDeclined.WithLabelValues("not_completed").Inc()
		return nil, apperrors.ErrAdNotCompleted
	}

	// 4. 看完才發票；播放期間冷卻可能已被其他請求用掉
	adID := "ad_" + uuid.New().String()
	awarded, err := s.tickets.AwardFreeTicket(ctx, userID, adID)
	if err != nil {
		return nil, err
	}
	if !awarded {
		return nil, apperrors.ErrCooldownActive
	}

	status, err = s.tickets.GetStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.AdRewardResult{
		Awarded: true,
		AdID:    adID,
		Status:  status,
	}, nil
}

func (s *RewardServiceImpl) PreloadAd(ctx context.Context) error {
	ready, err := s.ads.IsAdReady(ctx)
	if err != nil {
		return err
	}
	if ready {
		return nil
	}
	return s.ads.LoadAd(ctx)
}
