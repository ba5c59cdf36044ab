package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lost-woods/rngfacade/src/api"
	"github.com/lost-woods/rngfacade/src/source"
)

type Options struct {
	Port           string
	APIKey         string
	HealthInterval time.Duration
}

type Server struct {
	http   *http.Server
	router *gin.Engine
	rng    api.RNG
	health *source.Health
	every  time.Duration
	log    *zap.SugaredLogger
}

// New wires the routes. health may be nil, in which case no background
// monitoring is started.
func New(opts Options, r api.RNG, h *source.Health, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"X-API-KEY", "Accept"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(api.CheckHeader("X-API-KEY", opts.APIKey))

	handlers := api.NewHandlers(r, h, log)
	router.GET("/", handlers.RandomNumber)
	router.GET("/bytes", handlers.RandomBytes)
	router.GET("/u32", handlers.RandomU32)
	router.GET("/u64", handlers.RandomU64)
	router.GET("/nonce", handlers.RandomNonce)
	router.GET("/cards", handlers.RandomCards)
	router.GET("/strings", handlers.RandomStrings)
	router.GET("/percent", handlers.RandomPercent)
	router.GET("/health", handlers.Health)

	return &Server{
		http:   &http.Server{Addr: ":" + opts.Port, Handler: router},
		router: router,
		rng:    r,
		health: h,
		every:  opts.HealthInterval,
		log:    log,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.health != nil && s.every > 0 {
		go source.PeriodicHealthCheck(ctx, s.rng.NextU32, s.health, s.every, s.log)
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", s.http.Addr, "mode", s.rng.Stats().Mode)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.http.Shutdown(shutdownCtx)
	if serveErr := <-errc; !errors.Is(serveErr, http.ErrServerClosed) {
		err = multierr.Append(err, serveErr)
	}
	return err
}
