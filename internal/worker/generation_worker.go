package worker

import (
	"context"

	"dream-diary-api/internal/queue"
	"dream-diary-api/internal/service"
	"dream-diary-api/pkg/logger"

	"go.uber.org/zap"
)

type GenerationWorker interface {
	// 訂閱生圖隊列
	Start(ctx context.Context) error
}

type GenerationWorkerImpl struct {
	service service.DreamService
	queue   queue.GenerationQueue
}

func NewGenerationWorker(service service.DreamService, queue queue.GenerationQueue) GenerationWorker {
	return &GenerationWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *GenerationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeJobs(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			err := w.service.DispatchGeneration(ctx, msg.Data)
			if err != nil {
				// 生圖失敗不自動重試，重試會再次呼叫外部服務
				log.Warn("generation job failed", zap.String("job_id", msg.Data.JobID), zap.Error(err))
				msg.Nack(false)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}
