package queue

import (
	"context"
	"dream-diary-api/internal/model"
	"fmt"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Delivery struct {
	Data *model.GenerationJob
	Ack  func()
	Nack func(requeue bool)
}

type GenerationQueue interface {
	// 發送生圖任務到隊列
	PublishJob(ctx context.Context, job *model.GenerationJob) error
	// 訂閱生圖任務
	SubscribeJobs(ctx context.Context) (<-chan Delivery, error)
}

type GenerationQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.GenerationJob
}

func NewGenerationQueue(bufferSize int) GenerationQueue {
	return &GenerationQueueImpl{
		ch: make(chan *model.GenerationJob, bufferSize),
	}
}

// PublishJob 隊列滿了不阻塞請求，直接回錯讓呼叫端退票
func (q *GenerationQueueImpl) PublishJob(ctx context.Context, job *model.GenerationJob) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.ch <- job:
		return nil
	default:
		return fmt.Errorf("generation queue is full (capacity %d)", cap(q.ch))
	}
}

func (q *GenerationQueueImpl) SubscribeJobs(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				// 將原始任務包裝成 Delivery 格式給 Worker
				d := Delivery{
					Data: job,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							select {
							case q.ch <- job: // 簡單模擬重回隊列
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
