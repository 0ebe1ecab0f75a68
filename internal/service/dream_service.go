package service

import (
	"context"
	"errors"
	"strings"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/queue"
	"dream-diary-api/internal/repository"
	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/clock"
	"dream-diary-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DreamService interface {
	ListDreams(ctx context.Context, userID string) ([]*model.Dream, error)
	GetDream(ctx context.Context, userID string, dreamID uuid.UUID) (*model.Dream, error)
	CreateDream(ctx context.Context, userID string, req model.CreateDreamRequest) (*model.Dream, error)
	UpdateDream(ctx context.Context, userID string, dreamID uuid.UUID, req model.UpdateDreamRequest) (*model.Dream, error)
	DeleteDream(ctx context.Context, userID string, dreamID uuid.UUID) error

	// 同步生圖：扣票 -> 生圖 -> 寫入
	GenerateImage(ctx context.Context, userID string, dreamID uuid.UUID, opts model.GenerationOptions) (*model.GeneratedImage, error)
	// 非同步生圖：扣票後排入 queue，立即回傳任務
	RequestImage(ctx context.Context, userID string, dreamID uuid.UUID, opts model.GenerationOptions) (*model.GenerationJob, error)
	// 由 worker 執行排入 queue 的生圖任務；同一個 JobID 只會執行一次
	DispatchGeneration(ctx context.Context, job *model.GenerationJob) error
}

type DreamServiceImpl struct {
	repository repository.DreamRepository
	generation GenerationService
	jobs       queue.GenerationQueue
	started    repository.GenerationJobRepository
	clock      clock.Clock
}

func NewDreamService(
	dreamRepository repository.DreamRepository,
	generation GenerationService,
	jobs queue.GenerationQueue,
	started repository.GenerationJobRepository,
	clk clock.Clock,
) DreamService {
	return &DreamServiceImpl{
		repository: dreamRepository,
		generation: generation,
		jobs:       jobs,
		started:    started,
		clock:      clk,
	}
}

func (s *DreamServiceImpl) ListDreams(ctx context.Context, userID string) ([]*model.Dream, error) {
	return s.repository.ListByUser(ctx, userID)
}

func (s *DreamServiceImpl) GetDream(ctx context.Context, userID string, dreamID uuid.UUID) (*model.Dream, error) {
	return s.repository.FindByDreamID(ctx, userID, dreamID)
}

func (s *DreamServiceImpl) CreateDream(ctx context.Context, userID string, req model.CreateDreamRequest) (*model.Dream, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, apperrors.ErrInvalidInput
	}

	dream := &model.Dream{
		DreamID: uuid.New(),
		UserID:  userID,
		Title:   title,
		Content: content,
		Tags:    req.Tags,
	}
	return s.repository.Create(ctx, dream)
}

func (s *DreamServiceImpl) UpdateDream(ctx context.Context, userID string, dreamID uuid.UUID, req model.UpdateDreamRequest) (*model.Dream, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repository.Update(ctx, userID, dreamID, req.ToParams())
}

func (s *DreamServiceImpl) DeleteDream(ctx context.Context, userID string, dreamID uuid.UUID) error {
	return s.repository.Delete(ctx, userID, dreamID)
}

func (s *DreamServiceImpl) GenerateImage(ctx context.Context, userID string, dreamID uuid.UUID, opts model.GenerationOptions) (*model.GeneratedImage, error) {
	// 1. 夢境不存在就不扣票
	dream, err := s.repository.FindByDreamID(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}

	// 2. 扣票並生圖
	image, err := s.generation.Generate(ctx, userID, dream, opts)
	if err != nil {
		return nil, err
	}

	// 3. 寫入生圖結果
	return s.repository.AddImage(ctx, userID, dreamID, image)
}

func (s *DreamServiceImpl) RequestImage(ctx context.Context, userID string, dreamID uuid.UUID, opts model.GenerationOptions) (*model.GenerationJob, error) {
	if _, err := s.repository.FindByDreamID(ctx, userID, dreamID); err != nil {
		return nil, err
	}

	style := normalizeStyle(opts.Style)
	grant, err := s.generation.Authorize(ctx, userID, style)
	if err != nil {
		return nil, err
	}

	job := &model.GenerationJob{
		JobID:     "job_" + uuid.New().String(),
		DreamID:   dreamID,
		Style:     style,
		Grant:     *grant,
		CreatedAt: s.clock.Now(),
	}

	// ctx 跟隨請求的生命週期，使用者不等了就取消
	if err := s.jobs.PublishJob(ctx, job); err != nil {
		log := logger.WithUser("service", userID).With(zap.String("job_id", job.JobID))
		log.Error("failed to publish generation job", zap.Error(err))
		// 任務沒有排入 queue，票券必須退回；退票不跟隨請求取消
		if releaseErr := s.generation.Release(context.WithoutCancel(ctx), grant); releaseErr != nil {
			log.Error("failed to release generation grant", zap.Error(releaseErr))
		}
		return nil, apperrors.ErrInternalServerError
	}

	return job, nil
}

func (s *DreamServiceImpl) DispatchGeneration(ctx context.Context, job *model.GenerationJob) error {
	if job == nil {
		return apperrors.ErrInvalidInput
	}
	grant := &job.Grant
	log := logger.WithUser("worker", grant.UserID).With(zap.String("job_id", job.JobID))

	// 同一個任務只執行一次：queue 重送時不可再次呼叫生圖服務
	first, err := s.started.MarkStarted(ctx, job.JobID)
	if err != nil {
		log.Error("failed to mark generation job started", zap.Error(err))
		return err
	}
	if !first {
		log.Warn("generation job already started, skip duplicate delivery")
		return nil
	}

	dream, err := s.repository.FindByDreamID(ctx, grant.UserID, job.DreamID)
	if err != nil {
		// 夢境在排隊期間被刪除，生圖從未開始，退回票券
		if errors.Is(err, apperrors.ErrDreamNotFound) {
			log.Warn("dream removed before generation", zap.String("dream_id", job.DreamID.String()))
			if releaseErr := s.generation.Release(ctx, grant); releaseErr != nil {
				log.Error("failed to release generation grant", zap.Error(releaseErr))
			}
		}
		return err
	}

	image, err := s.generation.Attempt(ctx, grant, dream, job.Style)
	if err != nil {
		return err
	}

	if _, err := s.repository.AddImage(ctx, grant.UserID, job.DreamID, image); err != nil {
		log.Error("failed to save generated image", zap.Error(err))
		return err
	}

	log.Info("generation job done", zap.String("image_id", image.ImageID.String()))
	return nil
}
