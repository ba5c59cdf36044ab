//go:build rng_baremetal

package globalrng

// NewInterruptStrategy only exists in tinygo builds, so this tag fails to
// compile anywhere else.
func newDefaultBackend() Backend {
	return NewSlot(NewInterruptStrategy())
}
