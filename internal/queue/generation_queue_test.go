package queue_test

import (
	"context"
	"testing"
	"time"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/queue"
	"dream-diary-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob() *model.GenerationJob {
	ticketID := "free_" + uuid.New().String()
	return &model.GenerationJob{
		JobID:   "job_" + uuid.New().String(),
		DreamID: uuid.New(),
		Style:   model.ImageStyleAnime,
		Grant: model.GenerationGrant{
			UserID:  "u1",
			Quality: model.ImageQualityStandard,
			Ticket:  &model.Ticket{ID: ticketID, Kind: model.TicketKindFree, IsUsed: true},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func receive(t *testing.T, msgs <-chan queue.Delivery, timeout time.Duration) queue.Delivery {
	t.Helper()
	select {
	case d, ok := <-msgs:
		require.True(t, ok, "delivery channel closed")
		return d
	case <-time.After(timeout):
		t.Fatal("timed out waiting for delivery")
	}
	return queue.Delivery{}
}

func TestGenerationQueue_PublishAndSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewGenerationQueue(4)
	msgs, err := q.SubscribeJobs(ctx)
	require.NoError(t, err)

	job := newTestJob()
	require.NoError(t, q.PublishJob(ctx, job))

	d := receive(t, msgs, time.Second)
	assert.Equal(t, job.JobID, d.Data.JobID)
	d.Ack()
}

func TestGenerationQueue_Full(t *testing.T) {
	ctx := context.Background()
	q := queue.NewGenerationQueue(1)

	require.NoError(t, q.PublishJob(ctx, newTestJob()))
	// 沒有消費者時第二筆立即失敗，不阻塞請求
	assert.Error(t, q.PublishJob(ctx, newTestJob()))
}

func TestGenerationQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewGenerationQueue(4)
	msgs, err := q.SubscribeJobs(ctx)
	require.NoError(t, err)

	job := newTestJob()
	require.NoError(t, q.PublishJob(ctx, job))

	first := receive(t, msgs, time.Second)
	first.Nack(true)

	again := receive(t, msgs, time.Second)
	assert.Equal(t, job.JobID, again.Data.JobID)
	again.Ack()
}

func TestGenerationQueue_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewGenerationQueue(1)
	msgs, err := q.SubscribeJobs(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestNewGenerationQueueFromDriver(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		q, err := queue.NewGenerationQueueFromDriver(queue.DriverMemory, 8, nil, "")
		require.NoError(t, err)
		assert.IsType(t, &queue.GenerationQueueImpl{}, q)
	})

	t.Run("Redis without client", func(t *testing.T) {
		_, err := queue.NewGenerationQueueFromDriver(queue.DriverRedis, 0, nil, "")
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := queue.NewGenerationQueueFromDriver("kafka", 0, nil, "")
		assert.Error(t, err)
	})
}

func TestRedisStreamGenerationQueue(t *testing.T) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// 清掉前一次測試留下的 stream 與 consumer group
	require.NoError(t, rdb.Del(ctx, queue.StreamKey).Err())

	q, err := queue.NewRedisStreamGenerationQueue(rdb, "test-"+uuid.New().String(), &queue.RedisStreamGenerationQueueConfig{
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	msgs, err := q.SubscribeJobs(ctx)
	require.NoError(t, err)

	job := newTestJob()
	require.NoError(t, q.PublishJob(ctx, job))

	d := receive(t, msgs, 3*time.Second)
	assert.Equal(t, job.JobID, d.Data.JobID)
	assert.Equal(t, job.DreamID, d.Data.DreamID)
	require.NotNil(t, d.Data.Grant.Ticket)
	assert.Equal(t, job.Grant.Ticket.ID, d.Data.Grant.Ticket.ID)
	d.Ack()

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}
