package provider

import (
	"context"
	"errors"
	"fmt"

	"dream-diary-api/internal/model"
	"dream-diary-api/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIImageProvider 透過 OpenAI Images API 生圖
type OpenAIImageProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIImageProvider(apiKey string, imageModel string) *OpenAIImageProvider {
	return NewOpenAIImageProviderWithConfig(openai.DefaultConfig(apiKey), imageModel)
}

// NewOpenAIImageProviderWithConfig 可指定 BaseURL 等 client 設定
func NewOpenAIImageProviderWithConfig(cfg openai.ClientConfig, imageModel string) *OpenAIImageProvider {
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}
	return &OpenAIImageProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  imageModel,
	}
}

func (p *OpenAIImageProvider) Generate(ctx context.Context, prompt string, style model.ImageStyle, quality model.ImageQuality) (*ImageResult, error) {
	req := p.imageRequest(prompt, style, quality)

	resp, err := p.client.CreateImage(ctx, req)
	if err != nil {
		logger.WithComponent("provider").Warn("openai create image failed",
			zap.String("model", p.model),
			zap.String("quality", string(quality)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("openai create image: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, errors.New("openai create image: empty response")
	}

	return &ImageResult{
		URL:           resp.Data[0].URL,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
	}, nil
}

// quality 與 style 只有 dall-e-3 接受，其他模型帶了會被 API 拒絕
func (p *OpenAIImageProvider) imageRequest(prompt string, style model.ImageStyle, quality model.ImageQuality) openai.ImageRequest {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	}
	if p.model == openai.CreateImageModelDallE3 {
		req.Quality = openaiQuality(quality)
		req.Style = openaiStyle(style)
	}
	return req
}

func openaiQuality(quality model.ImageQuality) string {
	if quality == model.ImageQualityHD {
		return openai.CreateImageQualityHD
	}
	return openai.CreateImageQualityStandard
}

// 寫實風格用 natural，其餘用 vivid
func openaiStyle(style model.ImageStyle) string {
	if style == model.ImageStyleRealistic {
		return openai.CreateImageStyleNatural
	}
	return openai.CreateImageStyleVivid
}
