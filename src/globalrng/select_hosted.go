//go:build !rng_baremetal && !rng_fallback

package globalrng

func newDefaultBackend() Backend {
	return NewSlot(NewMutexStrategy())
}
