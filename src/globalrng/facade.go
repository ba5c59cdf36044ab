package globalrng

import "io"

var global = newDefaultBackend()

// Init installs g as the process-wide generator. Call it once during
// start-of-day, before any other code draws. Later calls return
// ErrAlreadyInitialized and the first generator stays in effect.
func Init(g Generator) error {
	return global.Install(g)
}

// TryFillBytes fills p from the process-wide generator.
func TryFillBytes(p []byte) error {
	return global.TryFillBytes(p)
}

func NextU32() (uint32, error) {
	return global.NextU32()
}

func NextU64() (uint64, error) {
	return global.NextU64()
}

func Initialized() bool {
	return global.Initialized()
}

// Mode names the strategy chosen at build time.
func Mode() string {
	return global.Mode()
}

func Status() Stats {
	return global.Stats()
}

// Facade is a value handle on the package-level functions, for code that
// takes its randomness as a dependency.
type Facade struct{}

func Default() Facade { return Facade{} }

func (Facade) TryFillBytes(p []byte) error { return TryFillBytes(p) }

func (Facade) NextU32() (uint32, error) { return NextU32() }

func (Facade) NextU64() (uint64, error) { return NextU64() }

func (Facade) Stats() Stats { return Status() }

// Reader returns an io.Reader that draws from the process-wide generator.
func Reader() io.Reader {
	return NewReader(Default())
}

// Filler is the byte-drawing half of a Backend.
type Filler interface {
	TryFillBytes(p []byte) error
}

type fillReader struct {
	f Filler
}

// NewReader adapts any backend's TryFillBytes to io.Reader. Reads are all or
// nothing.
func NewReader(f Filler) io.Reader {
	return fillReader{f: f}
}

func (r fillReader) Read(p []byte) (int, error) {
	if err := r.f.TryFillBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
