package model

import "time"

// PlanTier 訂閱方案等級
type PlanTier string

const (
	PlanTierFree PlanTier = "free"
	PlanTierPro  PlanTier = "pro"
)

// SubscriptionStatus 訂閱狀態
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// BillingPeriod 計費週期
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// Duration 每個計費週期對應的訂閱長度
func (p BillingPeriod) Duration() time.Duration {
	switch p {
	case BillingPeriodYearly:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Subscription 訂閱紀錄，每位使用者最多一筆，新訂閱直接覆蓋
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	PlanID    string             `json:"plan_id,omitempty"`
	Plan      PlanTier           `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	EndDate   *time.Time         `json:"end_date,omitempty"`
	AutoRenew bool               `json:"auto_renew"`
	Amount    *int               `json:"amount,omitempty"`
	Currency  *string            `json:"currency,omitempty"`
}

// IsActive 狀態為 active 且尚未到期
func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	return s.EndDate == nil || s.EndDate.After(now)
}

// IsPro 有效的 pro 訂閱
func (s *Subscription) IsPro(now time.Time) bool {
	return s.IsActive(now) && s.Plan == PlanTierPro
}

// EffectiveStatus active 但已過期的紀錄對外顯示為 expired
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubscriptionStatusActive && !s.IsActive(now) {
		return SubscriptionStatusExpired
	}
	return s.Status
}

// SubscriptionPlan 可訂閱的方案
type SubscriptionPlan struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         int           `json:"price"`
	Currency      string        `json:"currency"`
	BillingPeriod BillingPeriod `json:"billing_period"`
	Features      []string      `json:"features"`
	IsPopular     bool          `json:"is_popular,omitempty"`
}

// UserSubscriptionStatus 訂閱狀態查詢結果
type UserSubscriptionStatus struct {
	IsPro           bool               `json:"is_pro"`
	Tier            PlanTier           `json:"tier"`
	EffectiveStatus SubscriptionStatus `json:"effective_status,omitempty"`
	Plan            *SubscriptionPlan  `json:"plan,omitempty"`
	Subscription    *Subscription      `json:"subscription,omitempty"`
}
