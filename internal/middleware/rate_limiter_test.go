package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "ledger-agent/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(1, 3)(okHandler)

	for i := 0; i < 3; i++ {
		rec := serve(e, handler, "192.168.1.100:12345", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := serve(e, handler, "192.168.1.100:12345", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "SYSTEM_006", response.Error.Code)
}

func TestRateLimiter_SeparateBucketsPerClient(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(1, 1)(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.1:1000", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.1:1000", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.2:1000", "").Code)
}

func TestRateLimiter_UsesFirstForwardedAddress(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(1, 1)(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, "10.0.0.9:1000", "203.0.113.7, 10.0.0.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, "10.0.0.10:1000", "203.0.113.7").Code)
}

func TestRateLimiter_InstancesDoNotShareState(t *testing.T) {
	e := echo.New()
	first := RateLimiter(1, 1)(okHandler)
	second := RateLimiter(1, 1)(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, first, "10.0.0.3:1000", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, second, "10.0.0.3:1000", "").Code)
}

func TestVisitorStore_EvictIdle(t *testing.T) {
	store := newVisitorStore(5, 10)
	store.get("10.0.0.1")
	store.get("10.0.0.2")

	store.mu.Lock()
	store.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * visitorTTL)
	store.mu.Unlock()

	store.evictIdle(time.Now())

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.NotContains(t, store.visitors, "10.0.0.1")
	assert.Contains(t, store.visitors, "10.0.0.2")
}
