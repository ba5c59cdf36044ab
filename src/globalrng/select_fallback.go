//go:build rng_fallback

package globalrng

// Selecting both rng_fallback and rng_baremetal redeclares newDefaultBackend.
func newDefaultBackend() Backend {
	return NewFallbackOnly()
}
