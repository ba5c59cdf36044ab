package rng

import (
	"errors"
	"time"
)

const MaxNonceSize = 256

// Nonce returns size fresh random bytes, for protocol nonces and salts.
func Nonce(d Drawer, size int) ([]byte, error) {
	if size < 1 || size > MaxNonceSize {
		return nil, errors.New("nonce size must be between 1 and 256 bytes")
	}
	b := make([]byte, size)
	if err := d.TryFillBytes(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Jitter spreads base by up to ±fraction of itself, e.g. Jitter(d, 10s, 0.2)
// lands somewhere in [8s, 12s]. fraction must be in [0, 1].
func Jitter(d Drawer, base time.Duration, fraction float64) (time.Duration, error) {
	if base < 0 {
		return 0, errors.New("jitter base must not be negative")
	}
	if fraction < 0 || fraction > 1 {
		return 0, errors.New("jitter fraction must be between 0 and 1")
	}

	spread := time.Duration(float64(base) * fraction)
	if spread == 0 {
		return base, nil
	}

	x, err := d.NextU64()
	if err != nil {
		return 0, err
	}

	// modulo bias is at most (2*spread+1)/2^64
	offset := time.Duration(x%uint64(2*spread+1)) - spread
	return base + offset, nil
}
