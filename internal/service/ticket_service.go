package service

import (
	"context"
	"errors"
	"time"

	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/model"
	"dream-diary-api/internal/repository"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 固定的票券組合
var ticketPackages = []model.TicketPackage{
	{ID: "basic", Name: "Basic Pack", TicketCount: 10, Price: 120, PriceUSD: 0.80},
	{ID: "popular", Name: "Popular Pack", TicketCount: 25, Price: 250, PriceUSD: 1.70, IsPopular: true},
	{ID: "premium", Name: "Premium Pack", TicketCount: 50, Price: 400, PriceUSD: 2.70},
}

type TicketService interface {
	// 看完廣告領一張免費票；冷卻中回傳 false 且不做任何變更
	AwardFreeTicket(ctx context.Context, userID string, sourceAdID string) (bool, error)
	// 購買票券組合，不受冷卻限制
	PurchaseTickets(ctx context.Context, userID string, packageID string) ([]*model.Ticket, error)
	// 使用一張可用票券；沒有可用票券回傳 false
	UseTicket(ctx context.Context, userID string) (bool, error)
	// 同 UseTicket，但回傳被消耗的票券；沒有可用票券回傳 ErrInsufficientCredits
	ConsumeTicket(ctx context.Context, userID string) (*model.Ticket, error)
	// 補發一張與被消耗票券同種類、同到期時間的新票，原票券維持已使用
	RefundTicket(ctx context.Context, userID string, consumed *model.Ticket) (*model.Ticket, error)
	// 移除未使用且已過期的票券，回傳移除數量
	CleanupExpiredTickets(ctx context.Context, userID string) (int, error)
	GetStatus(ctx context.Context, userID string) (*model.UserTicketStatus, error)
	TimeUntilNextAd(ctx context.Context, userID string) (time.Duration, error)
	ListPackages() []model.TicketPackage
}

type TicketServiceImpl struct {
	repo  repository.LedgerRepository
	clock clock.Clock
	locks *userLocks
}

func NewTicketService(repo repository.LedgerRepository, clk clock.Clock) TicketService {
	return &TicketServiceImpl{
		repo:  repo,
		clock: clk,
		locks: newUserLocks(),
	}
}

func (s *TicketServiceImpl) AwardFreeTicket(ctx context.Context, userID string, sourceAdID string) (bool, error) {
	defer s.locks.lock(userID)()

	lastAdWatchedAt, err := s.repo.LoadLastAdWatched(ctx, userID)
	if err != nil {
		return false, err
	}

	now := s.clock.Now()
	if !model.CanWatchAdAt(lastAdWatchedAt, now) {
		metrics.AdRewardsDeclined.WithLabelValues("cooldown").Inc()
		return false, nil
	}

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return false, err
	}

	ticket := newTicket(model.TicketKindFree, now)
	if sourceAdID != "" {
		ticket.SourceAdID = &sourceAdID
	}
	tickets = append(tickets, ticket)

	// 票券與冷卻時間同一次寫入
	if err := s.repo.SaveTicketsAndAdWatched(ctx, userID, tickets, now); err != nil {
		return false, err
	}

	metrics.TicketsIssued.WithLabelValues(string(model.TicketKindFree), "ad").Inc()
	logger.WithUser("service", userID).Info("free ticket awarded",
		zap.String("ticket_id", ticket.ID),
		zap.String("source_ad_id", sourceAdID),
	)
	return true, nil
}

func (s *TicketServiceImpl) PurchaseTickets(ctx context.Context, userID string, packageID string) ([]*model.Ticket, error) {
	pkg, ok := findPackage(packageID)
	if !ok {
		return nil, apperrors.ErrInvalidPackage
	}

	defer s.locks.lock(userID)()

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 同一批購買的票券共用建立與到期時間
	purchasedAt := s.clock.Now()
	purchased := make([]*model.Ticket, 0, pkg.TicketCount)
	for i := 0; i < pkg.TicketCount; i++ {
		purchased = append(purchased, newTicket(model.TicketKindPurchased, purchasedAt))
	}
	tickets = append(tickets, purchased...)

	if err := s.repo.SaveTickets(ctx, userID, tickets); err != nil {
		return nil, err
	}

	metrics.TicketsIssued.WithLabelValues(string(model.TicketKindPurchased), pkg.ID).Add(float64(pkg.TicketCount))
	logger.WithUser("service", userID).Info("tickets purchased",
		zap.String("package_id", pkg.ID),
		zap.Int("count", pkg.TicketCount),
	)
	return purchased, nil
}

func (s *TicketServiceImpl) UseTicket(ctx context.Context, userID string) (bool, error) {
	_, err := s.ConsumeTicket(ctx, userID)
	if errors.Is(err, apperrors.ErrInsufficientCredits) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ConsumeTicket 依帳本順序 (先發先用) 選第一張可用票券
func (s *TicketServiceImpl) ConsumeTicket(ctx context.Context, userID string) (*model.Ticket, error) {
	defer s.locks.lock(userID)()

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var selected *model.Ticket
	for _, t := range tickets {
		if t.IsAvailable(now) {
			selected = t
			break
		}
	}
	if selected == nil {
		return nil, apperrors.ErrInsufficientCredits
	}

	selected.IsUsed = true
	usedAt := now
	selected.UsedAt = &usedAt

	if err := s.repo.SaveTickets(ctx, userID, tickets); err != nil {
		return nil, err
	}

	metrics.TicketsConsumed.Inc()
	logger.WithUser("service", userID).Info("ticket used", zap.String("ticket_id", selected.ID))
	return selected, nil
}

func (s *TicketServiceImpl) RefundTicket(ctx context.Context, userID string, consumed *model.Ticket) (*model.Ticket, error) {
	if consumed == nil || consumed.ID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	defer s.locks.lock(userID)()

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return nil, err
	}

	var original *model.Ticket
	for _, t := range tickets {
		if t.ID == consumed.ID {
			original = t
		}
		// 同一張票只補發一次
		if t.RefundOf != nil && *t.RefundOf == consumed.ID {
			return nil, apperrors.ErrInvalidInput
		}
	}
	if original == nil {
		return nil, apperrors.ErrTicketNotFound
	}
	if !original.IsUsed {
		return nil, apperrors.ErrInvalidInput
	}

	refund := newTicket(original.Kind, s.clock.Now())
	// 補發票券不延長原票券的有效期限
	refund.ExpiresAt = original.ExpiresAt
	refundOf := original.ID
	refund.RefundOf = &refundOf
	tickets = append(tickets, refund)

	if err := s.repo.SaveTickets(ctx, userID, tickets); err != nil {
		return nil, err
	}

	metrics.TicketsIssued.WithLabelValues(string(refund.Kind), "refund").Inc()
	logger.WithUser("service", userID).Info("ticket refunded",
		zap.String("ticket_id", refund.ID),
		zap.String("refund_of", refundOf),
	)
	return refund, nil
}

func (s *TicketServiceImpl) CleanupExpiredTickets(ctx context.Context, userID string) (int, error) {
	defer s.locks.lock(userID)()

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	kept := make([]*model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		// 已使用的票券保留，供歷史統計
		if !t.IsUsed && t.IsExpired(now) {
			continue
		}
		kept = append(kept, t)
	}

	removed := len(tickets) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.repo.SaveTickets(ctx, userID, kept); err != nil {
		return 0, err
	}

	logger.WithUser("service", userID).Info("expired tickets removed", zap.Int("removed", removed))
	return removed, nil
}

func (s *TicketServiceImpl) GetStatus(ctx context.Context, userID string) (*model.UserTicketStatus, error) {
	defer s.locks.rlock(userID)()

	tickets, err := s.repo.LoadTickets(ctx, userID)
	if err != nil {
		return nil, err
	}
	lastAdWatchedAt, err := s.repo.LoadLastAdWatched(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	status := &model.UserTicketStatus{
		LastAdWatchedAt:   lastAdWatchedAt,
		CanWatchAd:        model.CanWatchAdAt(lastAdWatchedAt, now),
		NextAdAvailableAt: model.NextAdAvailableAt(lastAdWatchedAt),
	}
	for _, t := range tickets {
		if t.IsAvailable(now) {
			status.AvailableTickets++
		}
		if t.IsUsed {
			status.TotalTicketsUsed++
		}
		// 補發票券不算入取得 / 購買總數
		if t.IsRefund() {
			continue
		}
		switch t.Kind {
		case model.TicketKindFree:
			status.TotalTicketsEarned++
		case model.TicketKindPurchased:
			status.TotalTicketsPurchased++
		}
	}

	return status, nil
}

func (s *TicketServiceImpl) TimeUntilNextAd(ctx context.Context, userID string) (time.Duration, error) {
	lastAdWatchedAt, err := s.repo.LoadLastAdWatched(ctx, userID)
	if err != nil {
		return 0, err
	}
	next := model.NextAdAvailableAt(lastAdWatchedAt)
	if next == nil {
		return 0, nil
	}
	remaining := next.Sub(s.clock.Now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (s *TicketServiceImpl) ListPackages() []model.TicketPackage {
	return append([]model.TicketPackage{}, ticketPackages...)
}

func findPackage(packageID string) (model.TicketPackage, bool) {
	for _, p := range ticketPackages {
		if p.ID == packageID {
			return p, true
		}
	}
	return model.TicketPackage{}, false
}

func newTicket(kind model.TicketKind, createdAt time.Time) *model.Ticket {
	return &model.Ticket{
		ID:        string(kind) + "_" + uuid.New().String(),
		Kind:      kind,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(model.TicketExpiry),
		IsUsed:    false,
	}
}
