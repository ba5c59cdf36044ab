package source

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig describes a USB/serial hardware TRNG.
type SerialConfig struct {
	Name          string `env:"SERIAL_DEVICE_NAME"`
	Baud          int    `env:"SERIAL_BAUD_RATE" envDefault:"115200"`
	ReadTimeoutMs int    `env:"SERIAL_READ_TIMEOUT" envDefault:"1000"`
}

func (c SerialConfig) validate() error {
	if c.Name == "" {
		return errors.New("SERIAL_DEVICE_NAME is required")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid SERIAL_BAUD_RATE: %d", c.Baud)
	}
	if c.ReadTimeoutMs < 0 {
		return fmt.Errorf("invalid SERIAL_READ_TIMEOUT: %d", c.ReadTimeoutMs)
	}
	return nil
}

// OpenSerial opens the serial TRNG, performs an initial health check and
// returns a generator over it. The caller owns the returned closer.
func OpenSerial(cfg SerialConfig) (*ReaderGenerator, *Health, io.Closer, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, nil, err
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		Size:        8,
		ReadTimeout: time.Duration(cfg.ReadTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open serial RNG %s: %w", cfg.Name, err)
	}

	g, h, err := NewCheckedReader(p)
	if err != nil {
		_ = p.Close()
		return nil, h, nil, err
	}
	return g, h, p, nil
}

// NewCheckedReader runs the startup health check on r and wraps it.
func NewCheckedReader(r io.Reader) (*ReaderGenerator, *Health, error) {
	h := NewHealth()
	if err := HealthCheck(r, h); err != nil {
		h.Set(false, err.Error())
		return nil, h, err
	}
	h.Set(true, "")
	return NewReaderGenerator(r, h), h, nil
}
