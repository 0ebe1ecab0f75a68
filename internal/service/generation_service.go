package service

import (
	"context"
	"errors"
	"fmt"

	"dream-diary-api/config"
	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/model"
	"dream-diary-api/internal/provider"
	"dream-diary-api/internal/repository"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenerationService interface {
	// Generate = Authorize + Attempt
	Generate(ctx context.Context, userID string, dream *model.Dream, opts model.GenerationOptions) (*model.GeneratedImage, error)
	// Authorize 確認方案；免費方案先消耗一張票券。失敗時不會呼叫生圖服務
	Authorize(ctx context.Context, userID string, style model.ImageStyle) (*model.GenerationGrant, error)
	// Attempt 呼叫生圖服務；失敗時依設定決定是否退票
	Attempt(ctx context.Context, grant *model.GenerationGrant, dream *model.Dream, style model.ImageStyle) (*model.GeneratedImage, error)
	// Release 退還尚未嘗試生圖的許可 (例如排入 queue 失敗)
	Release(ctx context.Context, grant *model.GenerationGrant) error
	AvailableStyles(tier model.PlanTier) []model.ImageStyle
}

type GenerationServiceImpl struct {
	subscriptions SubscriptionService
	tickets       TicketService
	images        provider.ImageProvider
	// Pro 訪談結果；nil 表示不使用訪談
	interviews repository.InterviewRepository
	policy     config.PolicyConfig
	clock      clock.Clock
}

func NewGenerationService(
	subscriptions SubscriptionService,
	tickets TicketService,
	images provider.ImageProvider,
	interviews repository.InterviewRepository,
	policy config.PolicyConfig,
	clk clock.Clock,
) GenerationService {
	return &GenerationServiceImpl{
		subscriptions: subscriptions,
		tickets:       tickets,
		images:        images,
		interviews:    interviews,
		policy:        policy,
		clock:         clk,
	}
}

func (s *GenerationServiceImpl) Generate(ctx context.Context, userID string, dream *model.Dream, opts model.GenerationOptions) (*model.GeneratedImage, error) {
	style := normalizeStyle(opts.Style)

	grant, err := s.Authorize(ctx, userID, style)
	if err != nil {
		return nil, err
	}

	return s.Attempt(ctx, grant, dream, style)
}

func (s *GenerationServiceImpl) Authorize(ctx context.Context, userID string, style model.ImageStyle) (*model.GenerationGrant, error) {
	style = normalizeStyle(style)
	if !style.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	// 1. 確認是否為 pro
	isPro, err := s.subscriptions.IsPro(ctx, userID)
	if err != nil {
		return nil, err
	}

	tier := model.PlanTierFree
	if isPro {
		tier = model.PlanTierPro
	}
	// 不能用的風格在扣票前就拒絕
	if !style.AllowedFor(tier) {
		return nil, apperrors.ErrStyleNotAvailable
	}

	grant := &model.GenerationGrant{
		UserID:  userID,
		IsPro:   isPro,
		Quality: model.QualityFor(isPro),
	}
	if isPro {
		return grant, nil
	}

	// 2. 免費方案先扣票，扣不到就直接結束
	ticket, err := s.tickets.ConsumeTicket(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientCredits) {
			metrics.Generations.WithLabelValues(string(tier), "insufficient_credits").Inc()
		}
		return nil, err
	}
	grant.Ticket = ticket

	return grant, nil
}

func (s *GenerationServiceImpl) Attempt(ctx context.Context, grant *model.GenerationGrant, dream *model.Dream, style model.ImageStyle) (*model.GeneratedImage, error) {
	if grant == nil || dream == nil {
		return nil, apperrors.ErrInvalidInput
	}
	style = normalizeStyle(style)
	tier := tierLabel(grant)
	log := logger.WithUser("service", grant.UserID).With(
		zap.String("dream_id", dream.DreamID.String()),
		zap.String("style", string(style)),
		zap.String("quality", string(grant.Quality)),
	)

	// 3. 呼叫生圖服務
	prompt := provider.BuildPrompt(dream, style, grant.IsPro, s.interviewPrompt(ctx, grant, dream, log))
	result, err := s.images.Generate(ctx, prompt, style, grant.Quality)
	if err != nil {
		// 4. 票券已扣，預設不退
		metrics.Generations.WithLabelValues(tier, "provider_failure").Inc()
		log.Warn("image provider failed", zap.Error(err))
		if s.policy.RefundOnProviderFailure && grant.Ticket != nil {
			// 生圖的 ctx 可能已逾時，退票改用獨立的 context
			if _, refundErr := s.tickets.RefundTicket(context.WithoutCancel(ctx), grant.UserID, grant.Ticket); refundErr != nil {
				log.Error("refund after provider failure failed", zap.Error(refundErr))
			}
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrProviderFailure, err)
	}

	prompt = firstNonEmpty(result.RevisedPrompt, prompt)
	image := &model.GeneratedImage{
		ImageID:     uuid.New(),
		URL:         result.URL,
		Prompt:      prompt,
		Style:       style,
		Quality:     grant.Quality,
		Cost:        grant.Quality.Cost(),
		GeneratedAt: s.clock.Now(),
	}

	metrics.Generations.WithLabelValues(tier, "success").Inc()
	log.Info("image generated", zap.String("image_id", image.ImageID.String()))
	return image, nil
}

func (s *GenerationServiceImpl) Release(ctx context.Context, grant *model.GenerationGrant) error {
	if grant == nil || grant.Ticket == nil {
		return nil
	}
	_, err := s.tickets.RefundTicket(ctx, grant.UserID, grant.Ticket)
	return err
}

func (s *GenerationServiceImpl) AvailableStyles(tier model.PlanTier) []model.ImageStyle {
	return model.AvailableStyles(tier)
}

// interviewPrompt 只有 Pro 且訪談已完成才有值；讀取失敗時照常生圖
func (s *GenerationServiceImpl) interviewPrompt(ctx context.Context, grant *model.GenerationGrant, dream *model.Dream, log *zap.Logger) string {
	if !grant.IsPro || s.interviews == nil {
		return ""
	}
	session, err := s.interviews.Find(ctx, grant.UserID, dream.DreamID)
	if err != nil {
		log.Warn("load interview failed, generating without it", zap.Error(err))
		return ""
	}
	if session == nil || !session.IsComplete() {
		return ""
	}
	return session.EnhancedPrompt
}

func normalizeStyle(style model.ImageStyle) model.ImageStyle {
	if style == "" {
		return model.ImageStyleRealistic
	}
	return style
}

func tierLabel(grant *model.GenerationGrant) string {
	if grant.IsPro {
		return string(model.PlanTierPro)
	}
	return string(model.PlanTierFree)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
