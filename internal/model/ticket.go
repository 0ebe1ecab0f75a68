package model

import "time"

const (
	// 票券固定 30 天有效，不分種類
	TicketExpiry = 30 * 24 * time.Hour
	// 兩次看廣告領票之間的最短間隔
	AdCooldown = 5 * time.Minute
)

// TicketKind 票券來源
type TicketKind string

const (
	TicketKindFree      TicketKind = "free"
	TicketKindPurchased TicketKind = "purchased"
)

// IsValid 驗證種類是否有效
func (k TicketKind) IsValid() bool {
	switch k {
	case TicketKindFree, TicketKindPurchased:
		return true
	}
	return false
}

// Ticket 票券模型，一張票可兌換一次免費方案的生圖
type Ticket struct {
	ID         string     `json:"id"`
	Kind       TicketKind `json:"kind"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	IsUsed     bool       `json:"is_used"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	SourceAdID *string    `json:"source_ad_id,omitempty"`
	// RefundOf 補發票券時指向被消耗的原票券
	RefundOf *string `json:"refund_of,omitempty"`
}

// IsExpired 到期時間當下即視為過期
func (t *Ticket) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsAvailable 未使用且未過期
func (t *Ticket) IsAvailable(now time.Time) bool {
	return !t.IsUsed && !t.IsExpired(now)
}

// IsRefund 是否為補發票券
func (t *Ticket) IsRefund() bool {
	return t.RefundOf != nil
}

// TicketPackage 可購買的票券組合
type TicketPackage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TicketCount int     `json:"ticket_count"`
	Price       int     `json:"price"` // JPY
	PriceUSD    float64 `json:"price_usd"`
	IsPopular   bool    `json:"is_popular,omitempty"`
}

// UserTicketStatus 由帳本即時計算，不落地
type UserTicketStatus struct {
	AvailableTickets      int        `json:"available_tickets"`
	TotalTicketsEarned    int        `json:"total_tickets_earned"`
	TotalTicketsUsed      int        `json:"total_tickets_used"`
	TotalTicketsPurchased int        `json:"total_tickets_purchased"`
	LastAdWatchedAt       *time.Time `json:"last_ad_watched_at,omitempty"`
	CanWatchAd            bool       `json:"can_watch_ad"`
	NextAdAvailableAt     *time.Time `json:"next_ad_available_at,omitempty"`
}

// CanWatchAdAt 冷卻判斷：從未看過廣告，或已超過冷卻時間
func CanWatchAdAt(lastAdWatchedAt *time.Time, now time.Time) bool {
	if lastAdWatchedAt == nil {
		return true
	}
	return !now.Before(lastAdWatchedAt.Add(AdCooldown))
}

// NextAdAvailableAt 僅在看過廣告時有意義
func NextAdAvailableAt(lastAdWatchedAt *time.Time) *time.Time {
	if lastAdWatchedAt == nil {
		return nil
	}
	next := lastAdWatchedAt.Add(AdCooldown)
	return &next
}

// AdRewardResult 看完廣告領票的結果
type AdRewardResult struct {
	Awarded bool              `json:"awarded"`
	AdID    string            `json:"ad_id"`
	Status  *UserTicketStatus `json:"status,omitempty"`
}
