package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lost-woods/rngfacade/src/api"
	"github.com/lost-woods/rngfacade/src/globalrng"
	"github.com/lost-woods/rngfacade/src/source"
)

var uuidV4Re = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func installedSlot(t *testing.T) *globalrng.Slot {
	t.Helper()
	s := globalrng.NewSlot(globalrng.NewMutexStrategy())
	require.NoError(t, s.Install(source.NewSeeded(1, 2)))
	return s
}

func serve(h gin.HandlerFunc, target string, jsonAccept bool) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	if jsonAccept {
		c.Request.Header.Set("Accept", "application/json")
	}
	h(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandlers_AcceptHeaderControlsJSON(t *testing.T) {
	h := api.NewHandlers(installedSlot(t), nil, zap.NewNop().Sugar())

	w := serve(h.RandomNumber, "/?min=1&max=3", true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	rid, _ := body["request_id"].(string)
	require.Regexp(t, uuidV4Re, rid)
	n := body["number"].(float64)
	require.GreaterOrEqual(t, n, 1.0)
	require.LessOrEqual(t, n, 3.0)

	w2 := serve(h.RandomNumber, "/?min=1&max=3", false)
	require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
	require.Contains(t, w2.Body.String(), "request_id:")
}

func TestHandlers_UninitializedIsUnavailable(t *testing.T) {
	s := globalrng.NewSlot(globalrng.NewMutexStrategy())
	h := api.NewHandlers(s, nil, zap.NewNop().Sugar())

	for _, hf := range []gin.HandlerFunc{h.RandomNumber, h.RandomBytes, h.RandomU32, h.RandomU64, h.Health} {
		w := serve(hf, "/", true)
		require.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "not initialized")
	}
}

func TestHandlers_BadArguments(t *testing.T) {
	h := api.NewHandlers(installedSlot(t), nil, zap.NewNop().Sugar())

	cases := []struct {
		handler gin.HandlerFunc
		target  string
	}{
		{h.RandomNumber, "/?min=5&max=1"},
		{h.RandomNumber, "/?min=x"},
		{h.RandomBytes, "/bytes?size=0"},
		{h.RandomNonce, "/nonce?size=257"},
		{h.RandomCards, "/cards?cards=53"},
		{h.RandomStrings, "/strings?lowercase=false&uppercase=false&numbers=false&symbols=false"},
		{h.RandomPercent, "/percent?percent=101"},
	}
	for _, tc := range cases {
		w := serve(tc.handler, tc.target, false)
		require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", tc.target, w.Body.String())
	}
}

func TestHandlers_Draws(t *testing.T) {
	h := api.NewHandlers(installedSlot(t), nil, zap.NewNop().Sugar())

	w := serve(h.RandomBytes, "/bytes?size=16", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["bytes"], 32)

	w = serve(h.RandomU64, "/u64", true)
	require.Equal(t, http.StatusOK, w.Code)
	_, isString := decode(t, w)["u64"].(string)
	require.True(t, isString)

	w = serve(h.RandomNonce, "/nonce?size=12", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["nonce"], 24)

	w = serve(h.RandomCards, "/cards?cards=5", false)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5, strings.Count(w.Body.String(), " of "))

	w = serve(h.RandomStrings, "/strings?size=20&symbols=false", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Regexp(t, `^[A-Za-z0-9]{20}$`, decode(t, w)["string"])

	w = serve(h.RandomPercent, "/percent?percent=100", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["pass"])
}

func TestHandlers_FallbackBackend(t *testing.T) {
	h := api.NewHandlers(globalrng.NewFallbackOnly(), nil, zap.NewNop().Sugar())

	w := serve(h.RandomU32, "/u32", true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(h.Health, "/health", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "fallback-only", decode(t, w)["mode"])
}

func TestHandlers_HealthReportsSourceFailure(t *testing.T) {
	health := source.NewHealth()
	health.Set(false, "serial RNG read failed")
	h := api.NewHandlers(installedSlot(t), health, zap.NewNop().Sugar())

	w := serve(h.Health, "/health", true)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	require.Equal(t, false, body["ok"])
	require.Equal(t, "serial RNG read failed", body["error"])

	w = serve(h.RandomU32, "/u32", false)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "RNG unhealthy")
}

func TestHandlers_HealthOK(t *testing.T) {
	health := source.NewHealth()
	health.Set(true, "")
	s := installedSlot(t)
	h := api.NewHandlers(s, health, zap.NewNop().Sugar())

	_, err := s.NextU32()
	require.NoError(t, err)

	w := serve(h.Health, "/health", true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	require.Equal(t, true, body["ok"])
	require.Equal(t, "hosted-lock", body["mode"])
	require.Equal(t, float64(1), body["draws"])

	w = serve(h.Health, "/health", false)
	require.True(t, strings.HasPrefix(w.Body.String(), "OK (mode hosted-lock"), w.Body.String())
}

type stuckGenerator struct{}

func (stuckGenerator) Read(p []byte) (int, error) { return len(p), nil }

func (stuckGenerator) Uint32() uint32 { panic("unplugged") }

func (stuckGenerator) Uint64() uint64 { panic("unplugged") }

func TestHandlers_PoisonedSlot(t *testing.T) {
	s := globalrng.NewSlot(globalrng.NewMutexStrategy())
	require.NoError(t, s.Install(stuckGenerator{}))
	require.Panics(t, func() { _, _ = s.NextU32() })

	h := api.NewHandlers(s, nil, zap.NewNop().Sugar())
	w := serve(h.RandomU32, "/u32", false)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "lock poisoned")
}
