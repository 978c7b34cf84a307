package concurrency

import (
	"sync"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager serializes work per key. A key's mutex lives only while some
// caller holds or waits for it, so the table stays as small as the number
// of users with a scan in flight.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until key is free and returns the function that releases it
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
