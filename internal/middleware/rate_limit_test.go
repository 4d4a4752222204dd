package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(client *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(client, ModifyRateLimitConfig(limit)))
	r.PUT("/posts/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doPut(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/posts/1", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newLimitedRouter(client, 2)
	rejected := rateLimitDecisions.WithLabelValues("ratelimit:modify:", limitRejected)
	rejectedBefore := testutil.ToFloat64(rejected)

	w := doPut(r, "192.0.2.1:1234")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusNoContent, doPut(r, "192.0.2.1:1234").Code)

	w = doPut(r, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	assert.Equal(t, float64(1), testutil.ToFloat64(rejected)-rejectedBefore)

	// 다른 IP는 별도 카운트
	assert.Equal(t, http.StatusNoContent, doPut(r, "192.0.2.2:1234").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newLimitedRouter(nil, 1)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, doPut(r, "192.0.2.1:1234").Code)
	}
}

func TestRateLimit_FailOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()

	failOpen := rateLimitDecisions.WithLabelValues("ratelimit:modify:", limitFailOpen)
	before := testutil.ToFloat64(failOpen)

	r := newLimitedRouter(client, 1)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, doPut(r, "192.0.2.1:1234").Code)
	}
	assert.Equal(t, float64(3), testutil.ToFloat64(failOpen)-before)
}
