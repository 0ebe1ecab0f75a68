package provider

import (
	"math/rand/v2"
	"strings"

	"dream-diary-api/internal/model"
)

// 免費方案加上一段戲劇化的描述
var dramaticElements = []string{
	"in a surreal dreamscape",
	"with mystical lighting",
	"in an ethereal atmosphere",
	"with magical elements",
	"in a whimsical setting",
	"with dramatic shadows and light",
	"in a fantasy world",
	"with enchanted details",
}

var styleModifiers = map[model.ImageStyle]string{
	model.ImageStyleRealistic:  "photorealistic, high detail, cinematic lighting",
	model.ImageStyleAnime:      "anime art style, vibrant colors, detailed",
	model.ImageStylePainting:   "oil painting style, artistic, painterly",
	model.ImageStyleSketch:     "pencil sketch style, black and white, detailed linework",
	model.ImageStyleWatercolor: "watercolor style, soft washes, flowing pigments",
	model.ImageStyleDigitalArt: "digital art, crisp rendering, concept art",
}

// BuildPrompt 以夢境內容組出生圖 prompt；interviewPrompt 是 Pro 訪談完成後的補充描述，可為空
func BuildPrompt(dream *model.Dream, style model.ImageStyle, isPro bool, interviewPrompt string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(dream.Content))

	if interviewPrompt = strings.TrimSuffix(strings.TrimSpace(interviewPrompt), "."); interviewPrompt != "" {
		b.WriteString(". ")
		b.WriteString(interviewPrompt)
	}

	if !isPro {
		b.WriteString(" ")
		b.WriteString(dramaticElements[rand.IntN(len(dramaticElements))])
	}

	modifier, ok := styleModifiers[style]
	if !ok {
		modifier = styleModifiers[model.ImageStyleRealistic]
	}
	b.WriteString(", ")
	b.WriteString(modifier)

	if len(dream.Tags) > 0 {
		b.WriteString(", featuring elements of: ")
		b.WriteString(strings.Join(dream.Tags, ", "))
	}

	return b.String()
}
