package globalrng

import (
	"fmt"
	"io"

	"go.uber.org/atomic"
)

// Slot holds at most one generator for its whole lifetime. Every read or
// write of the generator happens inside the slot's Strategy.
type Slot struct {
	strategy Strategy
	gen      Generator

	installed atomic.Bool
	draws     atomic.Uint64
}

var _ Backend = (*Slot)(nil)

func NewSlot(strategy Strategy) *Slot {
	return &Slot{strategy: strategy}
}

// Install stores g if the slot is empty. It succeeds once; later calls return
// ErrAlreadyInitialized and leave the first generator in place.
func (s *Slot) Install(g Generator) error {
	if g == nil {
		return ErrNilGenerator
	}

	var err error
	if lerr := s.strategy.Do(func() {
		if s.gen != nil {
			err = ErrAlreadyInitialized
			return
		}
		s.gen = g
		s.installed.Store(true)
	}); lerr != nil {
		return lerr
	}
	return err
}

// With calls fn with the installed generator while holding exclusive access.
// fn is not called when nothing is installed. The generator must not be
// retained after fn returns.
func (s *Slot) With(fn func(g Generator) error) error {
	var err error
	if lerr := s.strategy.Do(func() {
		if s.gen == nil {
			err = ErrNotInitialized
			return
		}
		s.draws.Inc()
		err = fn(s.gen)
	}); lerr != nil {
		return lerr
	}
	return err
}

// Apply is With for operations that produce a value.
func Apply[T any](s *Slot, fn func(g Generator) (T, error)) (T, error) {
	var out T
	err := s.With(func(g Generator) error {
		var err error
		out, err = fn(g)
		return err
	})
	return out, err
}

func (s *Slot) TryFillBytes(p []byte) error {
	return s.With(func(g Generator) error {
		return fill(g, p)
	})
}

func (s *Slot) NextU32() (uint32, error) {
	return Apply(s, func(g Generator) (uint32, error) {
		return g.Uint32(), nil
	})
}

func (s *Slot) NextU64() (uint64, error) {
	return Apply(s, func(g Generator) (uint64, error) {
		return g.Uint64(), nil
	})
}

func (s *Slot) Initialized() bool { return s.installed.Load() }

func (s *Slot) Mode() string { return s.strategy.Name() }

func (s *Slot) Stats() Stats {
	return Stats{
		Mode:        s.strategy.Name(),
		Initialized: s.installed.Load(),
		Draws:       s.draws.Load(),
		Poisoned:    s.strategy.Poisoned(),
	}
}

func fill(r io.Reader, p []byte) error {
	if _, err := io.ReadFull(r, p); err != nil {
		return fmt.Errorf("globalrng: generator read failed: %w", err)
	}
	return nil
}
