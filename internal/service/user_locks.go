package service

import "sync"

// userLock 以參考計數管理；沒有人持有或等待時就從 map 移除
type userLock struct {
	sync.RWMutex
	refs int
}

// userLocks 每位使用者一把讀寫鎖：寫入操作 (檢查 -> 修改 -> 儲存) 互斥，讀取共用
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

func (l *userLocks) acquire(userID string) *userLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	return entry
}

func (l *userLocks) release(userID string, entry *userLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, userID)
	}
}

// lock 取得寫鎖，回傳解鎖函式
func (l *userLocks) lock(userID string) func() {
	entry := l.acquire(userID)
	entry.Lock()
	return func() {
		entry.Unlock()
		l.release(userID, entry)
	}
}

// rlock 取得讀鎖，回傳解鎖函式
func (l *userLocks) rlock(userID string) func() {
	entry := l.acquire(userID)
	entry.RLock()
	return func() {
		entry.RUnlock()
		l.release(userID, entry)
	}
}

func (l *userLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
