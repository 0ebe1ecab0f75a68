package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterviewCategory 訪談問題分類
type InterviewCategory string

const (
	InterviewCategorySetting    InterviewCategory = "setting"
	InterviewCategoryCharacters InterviewCategory = "characters"
	InterviewCategoryEmotions   InterviewCategory = "emotions"
	InterviewCategoryDetails    InterviewCategory = "details"
	InterviewCategoryColors     InterviewCategory = "colors"
	InterviewCategoryActions    InterviewCategory = "actions"
)

// MaxInterviewQuestions 每場訪談最多幾題
const MaxInterviewQuestions = 8

type InterviewQuestion struct {
	ID       string            `json:"id"`
	Text     string            `json:"question"`
	Category InterviewCategory `json:"category"`
}

// InterviewResponse 一題的回答；空字串代表跳過
type InterviewResponse struct {
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnsweredAt time.Time `json:"answered_at"`
}

// InterviewSession 一個夢境的訪談，每個夢境最多一場
type InterviewSession struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	DreamID        uuid.UUID           `json:"dream_id"`
	Questions      []InterviewQuestion `json:"questions"`
	Responses      []InterviewResponse `json:"responses"`
	StartedAt      time.Time           `json:"started_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	EnhancedPrompt string              `json:"enhanced_prompt,omitempty"`
}

func (s *InterviewSession) IsComplete() bool {
	return s.CompletedAt != nil
}

// Answered 該題是否已回答或跳過
func (s *InterviewSession) Answered(questionID string) bool {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return true
		}
	}
	return false
}

// Question 依 ID 找題目
func (s *InterviewSession) Question(questionID string) (InterviewQuestion, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return InterviewQuestion{}, false
}

// NextQuestion 第一個還沒回答的題目，全部答完回傳 nil
func (s *InterviewSession) NextQuestion() *InterviewQuestion {
	for i := range s.Questions {
		if !s.Answered(s.Questions[i].ID) {
			q := s.Questions[i]
			return &q
		}
	}
	return nil
}

// Progress 已回答比例，0 到 100
func (s *InterviewSession) Progress() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return len(s.Responses) * 100 / len(s.Questions)
}

// 組 prompt 時分類的先後順序
var enhancedPromptOrder = []InterviewCategory{
	InterviewCategorySetting,
	InterviewCategoryCharacters,
	InterviewCategoryActions,
	InterviewCategoryDetails,
	InterviewCategoryColors,
	InterviewCategoryEmotions,
}

const enhancedPromptSuffix = "Highly detailed, photorealistic, professional quality, accurate representation, perfect composition, cinematic lighting."

// BuildEnhancedPrompt 依分類串接非空的回答
func (s *InterviewSession) BuildEnhancedPrompt() string {
	byCategory := make(map[InterviewCategory][]string)
	for _, r := range s.Responses {
		if r.Answer == "" {
			continue
		}
		q, ok := s.Question(r.QuestionID)
		if !ok {
			continue
		}
		byCategory[q.Category] = append(byCategory[q.Category], r.Answer)
	}

	var b strings.Builder
	for _, category := range enhancedPromptOrder {
		answers := byCategory[category]
		if len(answers) == 0 {
			continue
		}
		b.WriteString(strings.Join(answers, ", "))
		b.WriteString(". ")
	}
	b.WriteString(enhancedPromptSuffix)
	return strings.TrimSpace(b.String())
}

// InterviewStatus 回給前端的訪談狀態
type InterviewStatus struct {
	Session      *InterviewSession  `json:"session"`
	NextQuestion *InterviewQuestion `json:"next_question,omitempty"`
	Progress     int                `json:"progress"`
}

func NewInterviewStatus(session *InterviewSession) *InterviewStatus {
	return &InterviewStatus{
		Session:      session,
		NextQuestion: session.NextQuestion(),
		Progress:     session.Progress(),
	}
}

// AnswerInterviewRequest 回答一題；answer 留空代表跳過
type AnswerInterviewRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}
