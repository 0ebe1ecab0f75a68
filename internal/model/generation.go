package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageStyle 生圖風格
type ImageStyle string

const (
	ImageStyleRealistic  ImageStyle = "realistic"
	ImageStyleAnime      ImageStyle = "anime"
	ImageStylePainting   ImageStyle = "painting"
	ImageStyleSketch     ImageStyle = "sketch"
	ImageStyleWatercolor ImageStyle = "watercolor"
	ImageStyleDigitalArt ImageStyle = "digital_art"
)

var (
	freeStyles = []ImageStyle{ImageStyleRealistic, ImageStyleAnime}
	proStyles  = []ImageStyle{ImageStylePainting, ImageStyleSketch, ImageStyleWatercolor, ImageStyleDigitalArt}
)

// AvailableStyles pro 方案可使用全部風格
func AvailableStyles(tier PlanTier) []ImageStyle {
	styles := append([]ImageStyle{}, freeStyles...)
	if tier == PlanTierPro {
		styles = append(styles, proStyles...)
	}
	return styles
}

// IsValid 驗證風格是否存在
func (s ImageStyle) IsValid() bool {
	return s.AllowedFor(PlanTierPro)
}

// AllowedFor 檢查該方案能否使用此風格
func (s ImageStyle) AllowedFor(tier PlanTier) bool {
	for _, style := range AvailableStyles(tier) {
		if style == s {
			return true
		}
	}
	return false
}

// ImageQuality 生圖品質，pro 為 hd，其餘為 standard
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

// QualityFor 依方案決定實際品質
func QualityFor(isPro bool) ImageQuality {
	if isPro {
		return ImageQualityHD
	}
	return ImageQualityStandard
}

// Cost 每張圖的成本 (USD cents)
func (q ImageQuality) Cost() float64 {
	if q == ImageQualityHD {
		return 8.0
	}
	return 0.5
}

// GenerationOptions 生圖請求參數
type GenerationOptions struct {
	Style ImageStyle `json:"style"`
}

// GeneratedImage 生圖結果
type GeneratedImage struct {
	ID          int          `json:"id" db:"id"`
	ImageID     uuid.UUID    `json:"image_id" db:"image_id"`
	URL         string       `json:"url" db:"url"`
	Prompt      string       `json:"prompt" db:"prompt"`
	Style       ImageStyle   `json:"style" db:"style"`
	Quality     ImageQuality `json:"quality" db:"quality"`
	Cost        float64      `json:"cost" db:"cost"`
	GeneratedAt time.Time    `json:"generated_at" db:"generated_at"`
}

// GenerationGrant 通過方案/票券檢查後取得的生圖許可
type GenerationGrant struct {
	UserID  string       `json:"user_id"`
	IsPro   bool         `json:"is_pro"`
	Quality ImageQuality `json:"quality"`
	// Ticket 免費方案消耗的票券，pro 為 nil
	Ticket *Ticket `json:"ticket,omitempty"`
}

// GenerationJob 非同步生圖任務
type GenerationJob struct {
	JobID     string          `json:"job_id"`
	DreamID   uuid.UUID       `json:"dream_id"`
	Style     ImageStyle      `json:"style"`
	Grant     GenerationGrant `json:"grant"`
	CreatedAt time.Time       `json:"created_at"`
}
