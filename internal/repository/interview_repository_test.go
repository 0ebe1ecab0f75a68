package repository_test

import (
	"context"
	"testing"
	"time"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/repository"
	"dream-diary-api/internal/storage"
	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewRepository(t *testing.T) {
	ctx := context.Background()
	dreamID := uuid.New()

	t.Run("Find - none", func(t *testing.T) {
		repo := repository.NewInterviewRepository(storage.NewMemoryStore())

		session, err := repo.Find(ctx, "u1", dreamID)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Save then Find", func(t *testing.T) {
		store := storage.NewMemoryStore()
		repo := repository.NewInterviewRepository(store)
		started := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		err := repo.Save(ctx, &model.InterviewSession{
			ID:        "interview_1",
			UserID:    "u1",
			DreamID:   dreamID,
			Questions: []model.InterviewQuestion{{ID: "setting_location", Text: "Where?", Category: model.InterviewCategorySetting}},
			Responses: []model.InterviewResponse{{QuestionID: "setting_location", Question: "Where?", Answer: "a glass city", AnsweredAt: started}},
			StartedAt: started,
		})
		require.NoError(t, err)

		found, err := repo.Find(ctx, "u1", dreamID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "interview_1", found.ID)
		require.Len(t, found.Responses, 1)
		assert.Equal(t, "a glass city", found.Responses[0].Answer)

		// 以使用者和夢境分開存放
		_, err = store.Get(ctx, "user:u1:interview:"+dreamID.String())
		require.NoError(t, err)
		other, err := repo.Find(ctx, "u2", dreamID)
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("Save - missing dream", func(t *testing.T) {
		repo := repository.NewInterviewRepository(storage.NewMemoryStore())

		err := repo.Save(ctx, &model.InterviewSession{ID: "interview_1", UserID: "u1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Storage failure", func(t *testing.T) {
		repo := repository.NewInterviewRepository(failingStore{})

		_, err := repo.Find(ctx, "u1", dreamID)
		assert.ErrorIs(t, err, apperrors.ErrStorageFailure)

		err = repo.Save(ctx, &model.InterviewSession{ID: "interview_1", UserID: "u1", DreamID: dreamID})
		assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	})
}
