package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedEcho(limit int, window time.Duration) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(limit, window))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func get(e *echo.Echo, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	e := newLimitedEcho(2, 200*time.Millisecond)

	assert.Equal(t, http.StatusOK, get(e, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, get(e, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, get(e, "10.0.0.1:1000"))

	// Another client has its own budget.
	assert.Equal(t, http.StatusOK, get(e, "10.0.0.2:1000"))

	time.Sleep(250 * time.Millisecond)

	assert.Equal(t, http.StatusOK, get(e, "10.0.0.1:1000"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	e := newLimitedEcho(0, time.Minute)

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, get(e, "10.0.0.1:1000"))
	}
}
