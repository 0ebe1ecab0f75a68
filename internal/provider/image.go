package provider

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"dream-diary-api/config"
	"dream-diary-api/internal/model"
)

const (
	ImageProviderMock   = "mock"
	ImageProviderOpenAI = "openai"
)

// ImageResult 生圖服務的回傳
type ImageResult struct {
	URL           string
	RevisedPrompt string
}

// ImageProvider 外部生圖服務；可能很慢 (數秒)，逾時由實作自行處理
type ImageProvider interface {
	Generate(ctx context.Context, prompt string, style model.ImageStyle, quality model.ImageQuality) (*ImageResult, error)
}

func NewImageProvider(cfg *config.ProvidersConfig) (ImageProvider, error) {
	switch cfg.ImageProvider {
	case ImageProviderMock:
		return NewMockImageProvider(cfg.MockImageDelay), nil
	case ImageProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for image provider %q", cfg.ImageProvider)
		}
		return NewOpenAIImageProvider(cfg.OpenAIAPIKey, cfg.OpenAIImageModel), nil
	default:
		return nil, fmt.Errorf("unknown image provider %q", cfg.ImageProvider)
	}
}

var mockImages = []string{
	"https://picsum.photos/512/512?random=1",
	"https://picsum.photos/512/512?random=2",
	"https://picsum.photos/512/512?random=3",
	"https://picsum.photos/512/512?random=4",
	"https://picsum.photos/512/512?random=5",
}

// MockImageProvider 開發用：固定延遲後回傳隨機的佔位圖
type MockImageProvider struct {
	delay time.Duration
}

func NewMockImageProvider(delay time.Duration) *MockImageProvider {
	return &MockImageProvider{delay: delay}
}

func (p *MockImageProvider) Generate(ctx context.Context, prompt string, style model.ImageStyle, quality model.ImageQuality) (*ImageResult, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}
	return &ImageResult{
		URL:           mockImages[rand.IntN(len(mockImages))],
		RevisedPrompt: prompt,
	}, nil
}
