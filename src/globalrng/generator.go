package globalrng

import "io"

// Generator is anything that can produce random bytes and integers.
//
// Read may fail, for example when a hardware source disconnects. Uint32 and
// Uint64 may not return an error; an implementation that cannot produce a
// value must panic.
type Generator interface {
	io.Reader
	Uint32() uint32
	Uint64() uint64
}

// Backend is the set of operations the facade forwards to. Both the global
// slot and the fallback-only source implement it.
type Backend interface {
	Install(g Generator) error
	TryFillBytes(p []byte) error
	NextU32() (uint32, error)
	NextU64() (uint64, error)
	Initialized() bool
	Mode() string
	Stats() Stats
}

// Stats is a point-in-time view of a backend.
type Stats struct {
	Mode        string `json:"mode"`
	Initialized bool   `json:"initialized"`
	Draws       uint64 `json:"draws"`
	Poisoned    bool   `json:"poisoned"`
}
