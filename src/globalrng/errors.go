package globalrng

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init when a generator is already
	// in effect. The existing generator keeps being used.
	ErrAlreadyInitialized = errors.New("globalrng: generator already initialized")

	// ErrNotInitialized is returned by a draw made before Init succeeded.
	ErrNotInitialized = errors.New("globalrng: generator not initialized")

	// ErrLockUnavailable is returned when the exclusive-access primitive can
	// no longer be used, either because a previous holder panicked or because
	// it was acquired again from inside its own critical section.
	ErrLockUnavailable = errors.New("globalrng: lock unavailable")

	// ErrNilGenerator is returned by Init when given a nil generator.
	ErrNilGenerator = errors.New("globalrng: nil generator")
)
