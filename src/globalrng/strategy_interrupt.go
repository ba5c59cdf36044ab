//go:build tinygo

package globalrng

import "runtime/interrupt"

// InterruptStrategy is the bare-metal strategy. It disables interrupts for
// the length of fn, so fn must stay a single generator draw.
//
// The fields are only touched with interrupts disabled on a single core.
type InterruptStrategy struct {
	held     bool
	poisoned bool
}

func NewInterruptStrategy() *InterruptStrategy {
	return &InterruptStrategy{}
}

func (s *InterruptStrategy) Do(fn func()) error {
	state := interrupt.Disable()
	defer interrupt.Restore(state)

	// nested use from inside fn would hand out a second reference to the
	// generator
	if s.poisoned || s.held {
		return ErrLockUnavailable
	}

	s.held = true
	completed := false
	defer func() {
		s.held = false
		if !completed {
			s.poisoned = true
		}
	}()

	fn()
	completed = true
	return nil
}

func (s *InterruptStrategy) Name() string { return "bare-metal-lock" }

func (s *InterruptStrategy) Poisoned() bool { return s.poisoned }
