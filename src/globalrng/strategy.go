package globalrng

import (
	"sync"

	"go.uber.org/atomic"
)

// Strategy serializes access to the global slot.
//
// Do runs fn while holding exclusive access and releases it on every exit
// path, including a panic inside fn. A panic leaves the strategy poisoned and
// every later Do returns ErrLockUnavailable.
type Strategy interface {
	Do(fn func()) error
	Name() string
	Poisoned() bool
}

// MutexStrategy is the hosted strategy, backed by a blocking sync.Mutex.
// Acquiring it again from inside fn deadlocks.
type MutexStrategy struct {
	mu       sync.Mutex
	poisoned atomic.Bool
}

func NewMutexStrategy() *MutexStrategy {
	return &MutexStrategy{}
}

func (s *MutexStrategy) Do(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned.Load() {
		return ErrLockUnavailable
	}

	completed := false
	defer func() {
		if !completed {
			s.poisoned.Store(true)
		}
	}()

	fn()
	completed = true
	return nil
}

func (s *MutexStrategy) Name() string { return "hosted-lock" }

func (s *MutexStrategy) Poisoned() bool { return s.poisoned.Load() }

// NoLock runs fn directly. Only the fallback source uses it, since it never
// touches shared state.
type NoLock struct{}

func (NoLock) Do(fn func()) error {
	fn()
	return nil
}

func (NoLock) Name() string { return "fallback-only" }

func (NoLock) Poisoned() bool { return false }
