package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lost-woods/rngfacade/src/config"
	"github.com/lost-woods/rngfacade/src/globalrng"
	"github.com/lost-woods/rngfacade/src/server"
	"github.com/lost-woods/rngfacade/src/source"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	log := zapLogger.Sugar()
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatalw("rngfacade stopped", "error", err)
	}
}

func run(log *zap.SugaredLogger) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	gen, health, closer, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { err = multierr.Append(err, closer.Close()) }()
	}

	// start-of-day: nothing else has drawn yet
	if err := globalrng.Init(gen); err != nil {
		if !errors.Is(err, globalrng.ErrAlreadyInitialized) {
			return err
		}
		log.Warnw("generator not installed, keeping the one in effect", "mode", globalrng.Mode(), "error", err)
	}
	log.Infow("rng ready", "source", cfg.Source, "mode", globalrng.Mode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		HealthInterval: cfg.HealthInterval(),
	}, globalrng.Default(), health, log)

	return srv.Run(ctx)
}

// newGenerator builds the configured generator. health and closer are nil
// for sources without hardware behind them.
func newGenerator(cfg config.Config) (globalrng.Generator, *source.Health, io.Closer, error) {
	switch cfg.Source {
	case config.SourceSerial:
		g, h, c, err := source.OpenSerial(cfg.Serial)
		if err != nil {
			return nil, nil, nil, err
		}
		return g, h, c, nil
	case config.SourceSeeded:
		seed, err := seedOrRandom(cfg.Seed)
		if err != nil {
			return nil, nil, nil, err
		}
		return source.NewSeeded(seed, seed^0x9e3779b97f4a7c15), nil, nil, nil
	case config.SourceChaCha:
		seed, err := seedOrRandom(cfg.Seed)
		if err != nil {
			return nil, nil, nil, err
		}
		return source.NewChaCha(source.SeedFromUint64(seed)), nil, nil, nil
	case config.SourceOS:
		return source.NewReaderGenerator(rand.Reader, nil), nil, nil, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown RNG source %q", cfg.Source)
}

func seedOrRandom(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("seed from host entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
