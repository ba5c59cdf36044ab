package source

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReaderGenerator turns a byte stream, such as a hardware TRNG or
// crypto/rand.Reader, into a generator. Integers are read big-endian.
//
// Uint32 and Uint64 cannot report errors, so a failed read panics after
// recording the failure in the health monitor. Installed behind a hosted
// lock, that panic leaves the global slot unusable until restart.
type ReaderGenerator struct {
	r      io.Reader
	health *Health
	buf    [8]byte
}

// NewReaderGenerator wraps r. h may be nil.
func NewReaderGenerator(r io.Reader, h *Health) *ReaderGenerator {
	return &ReaderGenerator{r: r, health: h}
}

func (g *ReaderGenerator) Read(p []byte) (int, error) {
	n, err := io.ReadFull(g.r, p)
	if err != nil {
		g.fail(err)
		return n, fmt.Errorf("entropy read failed: %w", err)
	}
	return n, nil
}

func (g *ReaderGenerator) Uint32() uint32 {
	g.mustRead(g.buf[:4])
	return binary.BigEndian.Uint32(g.buf[:4])
}

func (g *ReaderGenerator) Uint64() uint64 {
	g.mustRead(g.buf[:])
	return binary.BigEndian.Uint64(g.buf[:])
}

func (g *ReaderGenerator) mustRead(p []byte) {
	if _, err := io.ReadFull(g.r, p); err != nil {
		g.fail(err)
		panic(fmt.Sprintf("entropy read failed: %v", err))
	}
}

func (g *ReaderGenerator) fail(err error) {
	if g.health != nil {
		g.health.Set(false, "error fetching random bytes: "+err.Error())
	}
}
