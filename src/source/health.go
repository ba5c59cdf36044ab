package source

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Health struct {
	mu            sync.RWMutex
	ok            bool
	lastErr       string
	lastCheckedAt time.Time
	lastSample32  uint32
	repeatCount32 int
}

func NewHealth() *Health { return &Health{ok: false} }

func (h *Health) Set(ok bool, errMsg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ok = ok
	h.lastErr = errMsg
	h.lastCheckedAt = time.Now()
}

func (h *Health) Snapshot() (ok bool, errMsg string, t time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ok, h.lastErr, h.lastCheckedAt
}

// observe records one periodic 32-bit sample and reports whether the stream
// still looks alive.
func (h *Health) observe(w uint32) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if w == h.lastSample32 {
		h.repeatCount32++
	} else {
		h.repeatCount32 = 0
	}
	h.lastSample32 = w
	h.lastCheckedAt = time.Now()

	// 20 identical 32-bit values in a row is astronomically unlikely for a healthy RNG.
	if h.repeatCount32 >= 20 {
		h.ok = false
		h.lastErr = "RNG appears stuck (repeating identical 32-bit outputs)"
		return false
	}

	h.ok = true
	h.lastErr = ""
	return true
}

// HealthCheck performs a lightweight sanity check on a raw entropy stream
// before it is installed. It cannot prove randomness, but detects
// disconnection, stuck output and other common failures.
func HealthCheck(r io.Reader, h *Health) error {
	const sampleBytes = 256
	buf := make([]byte, sampleBytes)

	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("RNG read failed: %w", err)
	}

	// Trivial stuck check: all identical
	allSame := true
	for i := 1; i < len(buf); i++ {
		if buf[i] != buf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("RNG appears stuck (all sampled bytes identical)")
	}

	// Excessive 32-bit repeats
	var prev uint32
	repeats := 0
	words := 0
	for i := 0; i+4 <= len(buf); i += 4 {
		w := binary.BigEndian.Uint32(buf[i : i+4])
		if words > 0 && w == prev {
			repeats++
		}
		prev = w
		words++
	}
	if words > 1 && repeats > (words-1)*3/4 {
		return errors.New("RNG appears stuck (32-bit words repeating excessively)")
	}

	if h != nil {
		h.mu.Lock()
		h.lastSample32 = prev
		h.repeatCount32 = 0
		h.mu.Unlock()
	}

	// Too few distinct byte values
	distinct := make(map[byte]struct{}, 256)
	for _, b := range buf {
		distinct[b] = struct{}{}
	}
	if len(distinct) < 8 {
		return fmt.Errorf("RNG sample has too few distinct byte values (%d); suspicious", len(distinct))
	}

	return nil
}

// PeriodicHealthCheck samples one 32-bit value every interval until ctx is
// done. draw should go through the global facade so the sample is serialized
// with every other caller of the installed generator.
func PeriodicHealthCheck(ctx context.Context, draw func() (uint32, error), h *Health, every time.Duration, log *zap.SugaredLogger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		w, err := safeDraw(draw)
		if err != nil {
			h.Set(false, "RNG draw failed: "+err.Error())
			log.Warnw("periodic health check failed", "error", err)
			continue
		}

		if !h.observe(w) {
			log.Errorw("RNG appears stuck", "sample", w)
		}
	}
}

// safeDraw keeps a panicking generator from taking the checker down with it.
func safeDraw(draw func() (uint32, error)) (w uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("RNG draw panicked: %v", r)
		}
	}()
	return draw()
}
