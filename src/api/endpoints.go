package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/rngfacade/src/globalrng"
	"github.com/lost-woods/rngfacade/src/rng"
	"github.com/lost-woods/rngfacade/src/source"
)

// RNG is the facade as the handlers see it.
type RNG interface {
	rng.Drawer
	Stats() globalrng.Stats
}

type Handlers struct {
	r      RNG
	health *source.Health
	log    *zap.SugaredLogger
}

// NewHandlers builds the handlers. health may be nil when the installed
// generator has no hardware to monitor.
func NewHandlers(r RNG, h *source.Health, log *zap.SugaredLogger) *Handlers {
	return &Handlers{r: r, health: h, log: log}
}

func (h *Handlers) rngOK(c *gin.Context) bool {
	st := h.r.Stats()
	if !st.Initialized {
		responder{c}.err(http.StatusServiceUnavailable, "RNG unavailable: generator not initialized")
		return false
	}
	if st.Poisoned {
		responder{c}.err(http.StatusServiceUnavailable, "RNG unavailable: lock poisoned")
		return false
	}
	if h.health == nil {
		return true
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c}.err(http.StatusServiceUnavailable, "RNG unhealthy: "+msg)
	return false
}

// drawStatus maps a facade error onto an HTTP status.
func drawStatus(err error) int {
	if errors.Is(err, globalrng.ErrNotInitialized) || errors.Is(err, globalrng.ErrLockUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

/*
handleRNG enforces:
1. RNG health check
2. Outcome computation (NO UUID here)
3. Error handling
4. UUID generation ONLY after success
5. JSON vs plaintext response
*/
func (h *Handlers) handleRNG(
	c *gin.Context,
	work func() (text string, payload gin.H, status int, errMsg string),
) {
	if !h.rngOK(c) {
		return
	}

	text, payload, status, errMsg := work()
	if errMsg != "" {
		responder{c}.err(status, errMsg)
		return
	}

	requestID, err := rng.NewUUIDv4(h.r)
	if err != nil {
		h.log.Errorw("request id generation failed", "error", err)
		responder{c}.err(drawStatus(err), "Error generating request id.")
		return
	}

	responder{c}.ok(text, payload, requestID)
}

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
