package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("Faker#KR1"), lm.GetLock(" faker#kr1 "))
	assert.NotSame(t, lm.GetLock("a#1"), lm.GetLock("b#1"))
}

func TestLockManager_TryLock(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("player#tag")
	_, ok := lm.TryLock("PLAYER#TAG")
	assert.False(t, ok, "held key must not be acquired twice")

	unlock()
	release, ok := lm.TryLock("player#tag")
	assert.True(t, ok)
	release()
}

func TestLockManager_SerializesCriticalSection(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("shared")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
