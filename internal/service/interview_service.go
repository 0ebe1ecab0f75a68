package service

import (
	"context"
	"strings"

	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/model"
	"dream-diary-api/internal/repository"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 題庫；同一分類內的順序就是出題順序
var interviewQuestions = []model.InterviewQuestion{
	{ID: "setting_location", Category: model.InterviewCategorySetting, Text: "Where exactly did this dream take place? Can you describe the environment in detail?"},
	{ID: "setting_time", Category: model.InterviewCategorySetting, Text: "What time of day was it in your dream? How did the lighting look?"},
	{ID: "setting_weather", Category: model.InterviewCategorySetting, Text: "What was the weather like? Were there any specific atmospheric conditions?"},
	{ID: "setting_architecture", Category: model.InterviewCategorySetting, Text: "If there were buildings or structures, what did they look like? Any specific architectural style?"},

	{ID: "char_people", Category: model.InterviewCategoryCharacters, Text: "Who else was in your dream? Can you describe their appearance?"},
	{ID: "char_animals", Category: model.InterviewCategoryCharacters, Text: "Were there any animals in your dream? What did they look like?"},
	{ID: "char_interactions", Category: model.InterviewCategoryCharacters, Text: "How did you interact with the other people or beings in your dream?"},
	{ID: "char_clothing", Category: model.InterviewCategoryCharacters, Text: "What were you and others wearing in the dream?"},

	{ID: "emotion_feeling", Category: model.InterviewCategoryEmotions, Text: "How did you feel during the dream? What emotions were strongest?"},
	{ID: "emotion_atmosphere", Category: model.InterviewCategoryEmotions, Text: "What was the overall mood or atmosphere of the dream?"},
	{ID: "emotion_fear", Category: model.InterviewCategoryEmotions, Text: "Were there any moments of fear, excitement, or surprise? What caused them?"},

	{ID: "detail_sounds", Category: model.InterviewCategoryDetails, Text: "Do you remember any specific sounds or music from your dream?"},
	{ID: "detail_objects", Category: model.InterviewCategoryDetails, Text: "Were there any important objects or items in your dream? What did they look like?"},
	{ID: "detail_textures", Category: model.InterviewCategoryDetails, Text: "Do you remember touching anything? What did surfaces feel like?"},
	{ID: "detail_scale", Category: model.InterviewCategoryDetails, Text: "Were things normal-sized, or was anything unusually large or small?"},

	{ID: "color_dominant", Category: model.InterviewCategoryColors, Text: "What colors stood out most in your dream? Were there any dominant color schemes?"},
	{ID: "color_unusual", Category: model.InterviewCategoryColors, Text: "Were there any unusual or impossible colors that don't exist in real life?"},
	{ID: "color_light", Category: model.InterviewCategoryColors, Text: "How would you describe the quality of light? Was it bright, dim, colorful, or monochrome?"},

	{ID: "action_movement", Category: model.InterviewCategoryActions, Text: "How were you moving in the dream? Walking, flying, floating, or something else?"},
	{ID: "action_sequence", Category: model.InterviewCategoryActions, Text: "What was the sequence of main events? What happened first, then next?"},
	{ID: "action_abilities", Category: model.InterviewCategoryActions, Text: "Did you have any special abilities or powers in the dream?"},
}

// 每場訪談都會問的題目
var baseInterviewQuestions = []string{"setting_location", "emotion_feeling", "detail_objects", "color_dominant"}

// 夢境內容出現關鍵字時追加的題目
var keywordInterviewQuestions = []struct {
	keywords   []string
	questionID string
}{
	{keywords: []string{"person", "people", "friend", "family"}, questionID: "char_people"},
	{keywords: []string{"animal", "dog", "cat", "bird"}, questionID: "char_animals"},
	{keywords: []string{"fly", "flying", "float", "run"}, questionID: "action_movement"},
	{keywords: []string{"house", "building", "room", "street"}, questionID: "setting_architecture"},
	{keywords: []string{"night", "day", "rain", "sunny"}, questionID: "setting_time"},
}

func findInterviewQuestion(id string) (model.InterviewQuestion, bool) {
	for _, q := range interviewQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return model.InterviewQuestion{}, false
}

// selectInterviewQuestions 固定題目加上依夢境內容挑選的題目，去重後最多 MaxInterviewQuestions 題
func selectInterviewQuestions(content string) []model.InterviewQuestion {
	ids := append([]string{}, baseInterviewQuestions...)
	lower := strings.ToLower(content)
	for _, rule := range keywordInterviewQuestions {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				ids = append(ids, rule.questionID)
				break
			}
		}
	}

	seen := make(map[string]bool, len(ids))
	selected := make([]model.InterviewQuestion, 0, model.MaxInterviewQuestions)
	for _, id := range ids {
		if seen[id] || len(selected) == model.MaxInterviewQuestions {
			continue
		}
		seen[id] = true
		if q, ok := findInterviewQuestion(id); ok {
			selected = append(selected, q)
		}
	}
	return selected
}

// InterviewService Pro 方案的 AI 訪談：補充夢境細節，完成後產生加強版 prompt
type InterviewService interface {
	// StartInterview 非 Pro 回傳 ErrProRequired；已有進行中的訪談時直接接續
	StartInterview(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewStatus, error)
	GetInterview(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewStatus, error)
	// AnswerQuestion 空白回答視為跳過；最後一題答完時產生加強版 prompt
	AnswerQuestion(ctx context.Context, userID string, dreamID uuid.UUID, req model.AnswerInterviewRequest) (*model.InterviewStatus, error)
}

type InterviewServiceImpl struct {
	repo          repository.InterviewRepository
	dreams        repository.DreamRepository
	subscriptions SubscriptionService
	clock         clock.Clock
	locks         *userLocks
}

func NewInterviewService(
	repo repository.InterviewRepository,
	dreams repository.DreamRepository,
	subscriptions SubscriptionService,
	clk clock.Clock,
) InterviewService {
	return &InterviewServiceImpl{
		repo:          repo,
		dreams:        dreams,
		subscriptions: subscriptions,
		clock:         clk,
		locks:         newUserLocks(),
	}
}

func (s *InterviewServiceImpl) StartInterview(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewStatus, error) {
	isPro, err := s.subscriptions.IsPro(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isPro {
		return nil, apperrors.ErrProRequired
	}

	defer s.locks.lock(userID)()

	dream, err := s.dreams.FindByDreamID(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.IsComplete() {
		return model.NewInterviewStatus(existing), nil
	}

	// 已完成的訪談重新開始時整場覆蓋
	session := &model.InterviewSession{
		ID:        "interview_" + uuid.New().String(),
		UserID:    userID,
		DreamID:   dreamID,
		Questions: selectInterviewQuestions(dream.Content),
		Responses: []model.InterviewResponse{},
		StartedAt: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	metrics.Interviews.WithLabelValues("started").Inc()
	logger.WithUser("service", userID).Info("interview started",
		zap.String("dream_id", dreamID.String()),
		zap.Int("questions", len(session.Questions)),
	)
	return model.NewInterviewStatus(session), nil
}

func (s *InterviewServiceImpl) GetInterview(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewStatus, error) {
	defer s.locks.rlock(userID)()

	session, err := s.repo.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrInterviewNotFound
	}
	return model.NewInterviewStatus(session), nil
}

func (s *InterviewServiceImpl) AnswerQuestion(ctx context.Context, userID string, dreamID uuid.UUID, req model.AnswerInterviewRequest) (*model.InterviewStatus, error) {
	defer s.locks.lock(userID)()

	session, err := s.repo.Find(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrInterviewNotFound
	}
	if session.IsComplete() {
		return nil, apperrors.ErrInvalidInput
	}

	question, ok := session.Question(req.QuestionID)
	if !ok || session.Answered(question.ID) {
		return nil, apperrors.ErrInvalidInput
	}

	now := s.clock.Now()
	session.Responses = append(session.Responses, model.InterviewResponse{
		QuestionID: question.ID,
		Question:   question.Text,
		Answer:     strings.TrimSpace(req.Answer),
		AnsweredAt: now,
	})

	if len(session.Responses) >= len(session.Questions) {
		completedAt := now
		session.CompletedAt = &completedAt
		session.EnhancedPrompt = session.BuildEnhancedPrompt()
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.IsComplete() {
		metrics.Interviews.WithLabelValues("completed").Inc()
		logger.WithUser("service", userID).Info("interview completed", zap.String("dream_id", dreamID.String()))
	}
	return model.NewInterviewStatus(session), nil
}
