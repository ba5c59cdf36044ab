// Package globalrng holds the one process-wide random number generator.
//
// An application installs its generator once at start-of-day with Init. All
// other code draws from it with TryFillBytes, NextU32 and NextU64 without
// knowing which generator, or which exclusive-access primitive, is in use.
//
// The exclusive-access primitive is picked at build time:
//
//	(no tag)        sync.Mutex, for hosted multi-threaded programs
//	rng_baremetal   interrupt critical section, for single-core tinygo targets
//	rng_fallback    no global state at all, every draw uses host entropy
//
// Draws made before Init fail with ErrNotInitialized, except in rng_fallback
// builds where they always succeed.
package globalrng
