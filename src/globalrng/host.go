package globalrng

import "encoding/binary"

// hostSource draws straight from the operating system. A new one is built
// for every fallback draw and dropped afterwards.
type hostSource struct {
	buf [8]byte
}

func newHostSource() *hostSource {
	return &hostSource{}
}

// Read always fills p. The host entropy source is treated as infallible.
func (h *hostSource) Read(p []byte) (int, error) {
	hostRead(p)
	return len(p), nil
}

func (h *hostSource) Uint32() uint32 {
	hostRead(h.buf[:4])
	return binary.LittleEndian.Uint32(h.buf[:4])
}

func (h *hostSource) Uint64() uint64 {
	hostRead(h.buf[:])
	return binary.LittleEndian.Uint64(h.buf[:])
}
