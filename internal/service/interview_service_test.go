package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/repository"
	repoMocks "dream-diary-api/internal/repository/mocks"
	"dream-diary-api/internal/service"
	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupInterview(t *testing.T) (*testServices, *repoMocks.MockDreamRepository, service.InterviewService) {
	t.Helper()
	s := setupServices(t)
	dreams := repoMocks.NewMockDreamRepository(t)
	return s, dreams, service.NewInterviewService(s.interviews, dreams, s.subscriptions, s.clock)
}

func subscribePro(t *testing.T, s *testServices) {
	t.Helper()
	_, err := s.subscriptions.Subscribe(context.Background(), "u1", "pro_monthly")
	require.NoError(t, err)
}

func questionIDs(questions []model.InterviewQuestion) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestInterviewService_StartInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("Free user is rejected", func(t *testing.T) {
		_, dreams, interviews := setupInterview(t)

		_, err := interviews.StartInterview(ctx, "u1", uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrProRequired)
		dreams.AssertNotCalled(t, "FindByDreamID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Base questions only", func(t *testing.T) {
		s, dreams, interviews := setupInterview(t)
		subscribePro(t, s)
		dream := testDream()
		dream.Content = "A quiet lake"
		dreams.EXPECT().FindByDreamID(ctx, "u1", dream.DreamID).Return(dream, nil).Once()

		status, err := interviews.StartInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		assert.Equal(t, []string{"setting_location", "emotion_feeling", "detail_objects", "color_dominant"}, questionIDs(status.Session.Questions))
		require.NotNil(t, status.NextQuestion)
		assert.Equal(t, "setting_location", status.NextQuestion.ID)
		assert.Zero(t, status.Progress)
		assert.True(t, testNow.Equal(status.Session.StartedAt))
	})

	t.Run("Questions follow the dream content", func(t *testing.T) {
		s, dreams, interviews := setupInterview(t)
		subscribePro(t, s)
		dream := testDream()
		dream.Content = "My FRIEND and a dog were flying over a building at night"
		dreams.EXPECT().FindByDreamID(ctx, "u1", dream.DreamID).Return(dream, nil).Once()

		status, err := interviews.StartInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		ids := questionIDs(status.Session.Questions)
		assert.Len(t, ids, model.MaxInterviewQuestions)
		assert.Equal(t, []string{
			"setting_location", "emotion_feeling", "detail_objects", "color_dominant",
			"char_people", "char_animals", "action_movement", "setting_architecture",
		}, ids)
	})

	t.Run("Unfinished interview is resumed", func(t *testing.T) {
		s, dreams, interviews := setupInterview(t)
		subscribePro(t, s)
		dream := testDream()
		dreams.EXPECT().FindByDreamID(ctx, "u1", dream.DreamID).Return(dream, nil).Twice()

		first, err := interviews.StartInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		_, err = interviews.AnswerQuestion(ctx, "u1", dream.DreamID, model.AnswerInterviewRequest{QuestionID: "setting_location", Answer: "a glass city"})
		require.NoError(t, err)

		again, err := interviews.StartInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		assert.Equal(t, first.Session.ID, again.Session.ID)
		assert.Len(t, again.Session.Responses, 1)
	})

	t.Run("Unknown dream", func(t *testing.T) {
		s, dreams, interviews := setupInterview(t)
		subscribePro(t, s)
		dreamID := uuid.New()
		dreams.EXPECT().FindByDreamID(ctx, "u1", dreamID).Return(nil, apperrors.ErrDreamNotFound).Once()

		_, err := interviews.StartInterview(ctx, "u1", dreamID)
		assert.ErrorIs(t, err, apperrors.ErrDreamNotFound)
	})
}

func TestInterviewService_AnswerQuestion(t *testing.T) {
	ctx := context.Background()

	start := func(t *testing.T) (*testServices, service.InterviewService, *model.Dream) {
		t.Helper()
		s, dreams, interviews := setupInterview(t)
		subscribePro(t, s)
		dream := testDream()
		dream.Content = "A quiet lake"
		dreams.EXPECT().FindByDreamID(ctx, "u1", dream.DreamID).Return(dream, nil).Once()
		_, err := interviews.StartInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		return s, interviews, dream
	}

	t.Run("Complete interview builds the enhanced prompt", func(t *testing.T) {
		s, interviews, dream := start(t)
		answers := []model.AnswerInterviewRequest{
			{QuestionID: "color_dominant", Answer: "  deep blue  "},
			{QuestionID: "setting_location", Answer: "a frozen lake"},
			{QuestionID: "detail_objects", Answer: ""},
			{QuestionID: "emotion_feeling", Answer: "calm"},
		}

		var status *model.InterviewStatus
		for i, answer := range answers {
			s.clock.Advance(time.Minute)
			var err error
			status, err = interviews.AnswerQuestion(ctx, "u1", dream.DreamID, answer)
			require.NoError(t, err)
			assert.Equal(t, (i+1)*100/len(answers), status.Progress)
		}

		assert.Equal(t, 100, status.Progress)
		assert.Nil(t, status.NextQuestion)
		require.NotNil(t, status.Session.CompletedAt)
		assert.True(t, s.clock.Now().Equal(*status.Session.CompletedAt))
		assert.Equal(t, "deep blue", status.Session.Responses[0].Answer)
		// 依分類順序組合，跳過的題目不出現
		assert.Equal(t,
			"a frozen lake. deep blue. calm. Highly detailed, photorealistic, professional quality, accurate representation, perfect composition, cinematic lighting.",
			status.Session.EnhancedPrompt)

		stored, err := s.interviews.Find(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		assert.Equal(t, status.Session.EnhancedPrompt, stored.EnhancedPrompt)
	})

	t.Run("Next question skips answered ones", func(t *testing.T) {
		_, interviews, dream := start(t)

		status, err := interviews.AnswerQuestion(ctx, "u1", dream.DreamID, model.AnswerInterviewRequest{QuestionID: "setting_location", Answer: "a lake"})
		require.NoError(t, err)
		require.NotNil(t, status.NextQuestion)
		assert.Equal(t, "emotion_feeling", status.NextQuestion.ID)
		assert.Equal(t, 25, status.Progress)
		assert.Nil(t, status.Session.CompletedAt)
	})

	t.Run("Unknown question", func(t *testing.T) {
		_, interviews, dream := start(t)

		_, err := interviews.AnswerQuestion(ctx, "u1", dream.DreamID, model.AnswerInterviewRequest{QuestionID: "char_clothing", Answer: "a coat"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Same question twice", func(t *testing.T) {
		_, interviews, dream := start(t)
		req := model.AnswerInterviewRequest{QuestionID: "setting_location", Answer: "a lake"}

		_, err := interviews.AnswerQuestion(ctx, "u1", dream.DreamID, req)
		require.NoError(t, err)
		_, err = interviews.AnswerQuestion(ctx, "u1", dream.DreamID, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Completed interview accepts no answers", func(t *testing.T) {
		_, interviews, dream := start(t)
		for _, id := range []string{"setting_location", "emotion_feeling", "detail_objects", "color_dominant"} {
			_, err := interviews.AnswerQuestion(ctx, "u1", dream.DreamID, model.AnswerInterviewRequest{QuestionID: id})
			require.NoError(t, err)
		}

		status, err := interviews.GetInterview(ctx, "u1", dream.DreamID)
		require.NoError(t, err)
		// 全部跳過時只剩固定的品質描述
		assert.True(t, strings.HasPrefix(status.Session.EnhancedPrompt, "Highly detailed"))

		_, err = interviews.AnswerQuestion(ctx, "u1", dream.DreamID, model.AnswerInterviewRequest{QuestionID: "setting_location", Answer: "late"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("No interview", func(t *testing.T) {
		_, _, interviews := setupInterview(t)

		_, err := interviews.AnswerQuestion(ctx, "u1", uuid.New(), model.AnswerInterviewRequest{QuestionID: "setting_location"})
		assert.ErrorIs(t, err, apperrors.ErrInterviewNotFound)
	})
}

func TestInterviewService_GetInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		_, _, interviews := setupInterview(t)

		_, err := interviews.GetInterview(ctx, "u1", uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrInterviewNotFound)
	})

	t.Run("Storage failure", func(t *testing.T) {
		s := setupServices(t)
		dreams := repoMocks.NewMockDreamRepository(t)
		interviews := service.NewInterviewService(repository.NewInterviewRepository(failingStore{}), dreams, s.subscriptions, s.clock)

		_, err := interviews.GetInterview(ctx, "u1", uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	})
}
