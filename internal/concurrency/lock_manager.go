package concurrency

import (
	"strings"
	"sync"
)

// LockManager hands out one mutex per normalized key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key. Keys are case-insensitive.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(normalizeKey(key), &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its release function
func (lm *LockManager) Lock(key string) (unlock func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// TryLock acquires the mutex for key only when it is free
func (lm *LockManager) TryLock(key string) (unlock func(), ok bool) {
	mu := lm.GetLock(key)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
