package session_repo

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryAcquireExactlyOneWinner(t *testing.T) {
	repo := NewSessionRepository()

	const goroutines = 100
	var acquired atomic.Int32
	var wg sync.WaitGroup

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if repo.TryAcquire(1) {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load())
}

func TestReleaseAllowsReacquire(t *testing.T) {
	repo := NewSessionRepository()

	assert.True(t, repo.TryAcquire(1))
	assert.False(t, repo.TryAcquire(1))

	repo.Release(1)
	assert.True(t, repo.TryAcquire(1))
}

func TestIndependentUsers(t *testing.T) {
	repo := NewSessionRepository()

	assert.True(t, repo.TryAcquire(1))
	assert.True(t, repo.TryAcquire(2))
}

func TestDoubleReleaseIsSafe(t *testing.T) {
	repo := NewSessionRepository()

	repo.Release(1)
	assert.True(t, repo.TryAcquire(1))

	repo.Release(1)
	repo.Release(1)
	assert.True(t, repo.TryAcquire(1))
}
