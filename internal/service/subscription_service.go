package service

import (
	"context"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/repository"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var proFeatures = []string{
	"Unlimited high-quality image generation",
	"AI interviewer for detailed dreams",
	"No ads",
	"Priority support",
	"Exclusive art styles",
	"HD image downloads",
}

// 固定的訂閱方案
var subscriptionPlans = []model.SubscriptionPlan{
	{
		ID:            "pro_monthly",
		Name:          "Pro Monthly",
		Price:         500,
		Currency:      "JPY",
		BillingPeriod: model.BillingPeriodMonthly,
		Features:      proFeatures,
	},
	{
		ID:            "pro_yearly",
		Name:          "Pro Yearly",
		Price:         5000,
		Currency:      "JPY",
		BillingPeriod: model.BillingPeriodYearly,
		Features:      append(append([]string{}, proFeatures...), "2 months free (vs monthly plan)"),
		IsPopular:     true,
	},
}

type SubscriptionService interface {
	IsPro(ctx context.Context, userID string) (bool, error)
	// 訂閱方案；再次訂閱會整筆覆蓋先前的紀錄
	Subscribe(ctx context.Context, userID string, planID string) (*model.Subscription, error)
	// 取消訂閱；沒有紀錄時回傳 false
	Cancel(ctx context.Context, userID string) (bool, error)
	GetStatus(ctx context.Context, userID string) (*model.UserSubscriptionStatus, error)
	GetUserPlan(ctx context.Context, userID string) (model.PlanTier, error)
	ListPlans() []model.SubscriptionPlan
}

type SubscriptionServiceImpl struct {
	repo  repository.SubscriptionRepository
	clock clock.Clock
}

func NewSubscriptionService(repo repository.SubscriptionRepository, clk clock.Clock) SubscriptionService {
	return &SubscriptionServiceImpl{repo: repo, clock: clk}
}

func (s *SubscriptionServiceImpl) IsPro(ctx context.Context, userID string) (bool, error) {
	subscription, err := s.repo.Find(ctx, userID)
	if err != nil {
		return false, err
	}
	if subscription == nil {
		return false, nil
	}
	return subscription.IsPro(s.clock.Now()), nil
}

func (s *SubscriptionServiceImpl) Subscribe(ctx context.Context, userID string, planID string) (*model.Subscription, error) {
	plan, ok := findPlan(planID)
	if !ok {
		return nil, apperrors.ErrInvalidPlan
	}

	now := s.clock.Now()
	endDate := now.Add(plan.BillingPeriod.Duration())
	amount := plan.Price
	currency := plan.Currency

	subscription := &model.Subscription{
		ID:        "sub_" + uuid.New().String(),
		UserID:    userID,
		PlanID:    plan.ID,
		Plan:      model.PlanTierPro,
		Status:    model.SubscriptionStatusActive,
		StartDate: now,
		EndDate:   &endDate,
		AutoRenew: true,
		Amount:    &amount,
		Currency:  &currency,
	}

	if err := s.repo.Save(ctx, subscription); err != nil {
		return nil, err
	}

	logger.WithUser("service", userID).Info("subscribed",
		zap.String("plan_id", plan.ID),
		zap.Time("end_date", endDate),
	)
	return subscription, nil
}

func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, userID string) (bool, error) {
	subscription, err := s.repo.Find(ctx, userID)
	if err != nil {
		return false, err
	}
	if subscription == nil {
		return false, nil
	}

	subscription.Status = model.SubscriptionStatusCancelled
	subscription.AutoRenew = false

	if err := s.repo.Save(ctx, subscription); err != nil {
		return false, err
	}

	logger.WithUser("service", userID).Info("subscription cancelled", zap.String("subscription_id", subscription.ID))
	return true, nil
}

func (s *SubscriptionServiceImpl) GetStatus(ctx context.Context, userID string) (*model.UserSubscriptionStatus, error) {
	subscription, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return &model.UserSubscriptionStatus{IsPro: false, Tier: model.PlanTierFree}, nil
	}

	now := s.clock.Now()
	status := &model.UserSubscriptionStatus{
		IsPro:           subscription.IsPro(now),
		Tier:            model.PlanTierFree,
		EffectiveStatus: subscription.EffectiveStatus(now),
		Subscription:    subscription,
	}
	if status.IsPro {
		status.Tier = model.PlanTierPro
	}
	if plan, ok := findPlan(subscription.PlanID); ok {
		status.Plan = &plan
	}
	return status, nil
}

func (s *SubscriptionServiceImpl) GetUserPlan(ctx context.Context, userID string) (model.PlanTier, error) {
	isPro, err := s.IsPro(ctx, userID)
	if err != nil {
		return model.PlanTierFree, err
	}
	if isPro {
		return model.PlanTierPro, nil
	}
	return model.PlanTierFree, nil
}

func (s *SubscriptionServiceImpl) ListPlans() []model.SubscriptionPlan {
	return append([]model.SubscriptionPlan{}, subscriptionPlans...)
}

func findPlan(planID string) (model.SubscriptionPlan, bool) {
	for _, p := range subscriptionPlans {
		if p.ID == planID {
			return p, true
		}
	}
	return model.SubscriptionPlan{}, false
}
