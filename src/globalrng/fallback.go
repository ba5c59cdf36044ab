package globalrng

// FallbackOnly serves every draw from host entropy. It keeps no state, so a
// draw can never fail and Install has nothing to install into.
type FallbackOnly struct {
	strategy NoLock
}

var _ Backend = (*FallbackOnly)(nil)

func NewFallbackOnly() *FallbackOnly {
	return &FallbackOnly{}
}

// Install discards g and returns ErrAlreadyInitialized: the host source is
// always the generator in effect.
func (f *FallbackOnly) Install(g Generator) error {
	if g == nil {
		return ErrNilGenerator
	}
	return ErrAlreadyInitialized
}

func (f *FallbackOnly) TryFillBytes(p []byte) error {
	_ = f.strategy.Do(func() {
		newHostSource().Read(p)
	})
	return nil
}

func (f *FallbackOnly) NextU32() (uint32, error) {
	var v uint32
	_ = f.strategy.Do(func() {
		v = newHostSource().Uint32()
	})
	return v, nil
}

func (f *FallbackOnly) NextU64() (uint64, error) {
	var v uint64
	_ = f.strategy.Do(func() {
		v = newHostSource().Uint64()
	})
	return v, nil
}

func (f *FallbackOnly) Initialized() bool { return true }

func (f *FallbackOnly) Mode() string { return f.strategy.Name() }

func (f *FallbackOnly) Stats() Stats {
	return Stats{Mode: f.strategy.Name(), Initialized: true}
}
