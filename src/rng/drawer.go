package rng

// Drawer is where every helper in this package takes its randomness from.
// globalrng.Default() satisfies it, as do globalrng.Slot and
// globalrng.FallbackOnly.
type Drawer interface {
	TryFillBytes(p []byte) error
	NextU32() (uint32, error)
	NextU64() (uint64, error)
}
