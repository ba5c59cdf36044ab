package source

import (
	"encoding/binary"
	"math/rand/v2"
)

// Seeded is a deterministic PCG generator. Two Seeded values built from the
// same seeds produce the same stream.
type Seeded struct {
	r *rand.Rand
}

func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *Seeded) Uint32() uint32 { return s.r.Uint32() }

func (s *Seeded) Uint64() uint64 { return s.r.Uint64() }

func (s *Seeded) Read(p []byte) (int, error) {
	fillFromUint64(p, s.r.Uint64)
	return len(p), nil
}

// ChaCha is a ChaCha8 based generator seeded with 32 bytes.
type ChaCha struct {
	c *rand.ChaCha8
}

func NewChaCha(seed [32]byte) *ChaCha {
	return &ChaCha{c: rand.NewChaCha8(seed)}
}

func (c *ChaCha) Uint32() uint32 { return uint32(c.c.Uint64() >> 32) }

func (c *ChaCha) Uint64() uint64 { return c.c.Uint64() }

func (c *ChaCha) Read(p []byte) (int, error) { return c.c.Read(p) }

// SeedFromUint64 stretches a single number into a ChaCha seed, so a
// configured integer seed can drive either generator.
func SeedFromUint64(seed uint64) [32]byte {
	var out [32]byte
	pcg := rand.NewPCG(seed, ^seed)
	for i := 0; i < len(out); i += 8 {
		binary.LittleEndian.PutUint64(out[i:], pcg.Uint64())
	}
	return out
}

// fillFromUint64 fills p with little-endian words from next. A trailing
// partial word still consumes a whole draw.
func fillFromUint64(p []byte, next func() uint64) {
	var buf [8]byte
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, next())
		p = p[8:]
	}
	if len(p) > 0 {
		binary.LittleEndian.PutUint64(buf[:], next())
		copy(p, buf[:])
	}
}
