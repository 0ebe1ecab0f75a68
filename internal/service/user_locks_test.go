package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"dream-diary-api/internal/repository"
	"dream-diary-api/internal/storage"
	"dream-diary-api/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func setupLockTestService() *TicketServiceImpl {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewTicketService(repository.NewLedgerRepository(storage.NewMemoryStore()), clock.NewFake(now)).(*TicketServiceImpl)
}

func TestUserLocks_ReleasedWhenIdle(t *testing.T) {
	locks := newUserLocks()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("u%d", i%5)
			if i%2 == 0 {
				defer locks.lock(userID)()
			} else {
				defer locks.rlock(userID)()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, locks.size())
}

func TestUserLocks_WaiterKeepsEntry(t *testing.T) {
	locks := newUserLocks()

	unlock := locks.lock("u1")
	acquired := make(chan struct{})
	go func() {
		defer locks.lock("u1")()
		close(acquired)
	}()

	// 等待者還在排隊時，entry 不可被移除
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, locks.size())
	select {
	case <-acquired:
		t.Fatal("second writer acquired the lock while it was held")
	default:
	}

	unlock()
	<-acquired
	assert.Eventually(t, func() bool { return locks.size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestTicketService_LocksReleased(t *testing.T) {
	svc := setupLockTestService()

	_, err := svc.PurchaseTickets(t.Context(), "u1", "basic")
	assert.NoError(t, err)
	_, err = svc.UseTicket(t.Context(), "u1")
	assert.NoError(t, err)
	_, err = svc.GetStatus(t.Context(), "u2")
	assert.NoError(t, err)

	assert.Equal(t, 0, svc.locks.size())
}
