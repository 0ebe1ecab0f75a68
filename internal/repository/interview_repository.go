package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/storage"
	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/google/uuid"
)

type InterviewRepository interface {
	// Find 沒有訪談紀錄時回傳 nil, nil
	Find(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewSession, error)
	Save(ctx context.Context, session *model.InterviewSession) error
}

type InterviewRepositoryImpl struct {
	store storage.Store
}

func NewInterviewRepository(store storage.Store) InterviewRepository {
	return &InterviewRepositoryImpl{store: store}
}

// 例如 user:42:interview:<dream uuid>
func interviewKey(userID string, dreamID uuid.UUID) string {
	return userKey(userID, "interview:"+dreamID.String())
}

func (r *InterviewRepositoryImpl) Find(ctx context.Context, userID string, dreamID uuid.UUID) (*model.InterviewSession, error) {
	raw, err := r.store.Get(ctx, interviewKey(userID, dreamID))
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageFailure("load interview", err)
	}

	var session model.InterviewSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, storageFailure("decode interview", err)
	}
	return &session, nil
}

func (r *InterviewRepositoryImpl) Save(ctx context.Context, session *model.InterviewSession) error {
	if session == nil || session.UserID == "" || session.DreamID == uuid.Nil {
		return apperrors.ErrInvalidInput
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode interview: %w", err)
	}
	if err := r.store.Set(ctx, interviewKey(session.UserID, session.DreamID), raw); err != nil {
		return storageFailure("save interview", err)
	}
	return nil
}
