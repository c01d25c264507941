package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	lastKey    string
}

func (s *stubLimiter) Allow(key string) (bool, time.Duration, error) {
	s.lastKey = key
	return s.allowed, s.retryAfter, s.err
}

func setupReportRoute(limiter *stubLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/drivers/:id/location", ReportRateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestReportRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	router := setupReportRoute(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drivers/abc/location", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", limiter.lastKey, "the limiter is keyed by driver id")
}

func TestReportRateLimit_Blocked(t *testing.T) {
	limiter := &stubLimiter{allowed: false, retryAfter: 30 * time.Second}
	router := setupReportRoute(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drivers/abc/location", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestReportRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis unavailable")}
	router := setupReportRoute(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drivers/abc/location", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
