package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "boardflab"

// caller 라벨 값
const (
	callerMember    = "member"
	callerAnonymous = "anonymous"
)

// 레이트 리미터 판정 라벨 값
const (
	limitAllowed  = "allowed"
	limitRejected = "rejected"
	limitFailOpen = "fail_open"
)

var (
	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_requests_total",
			Help:      "API requests by route template, status class and caller kind",
		},
		[]string{"method", "route", "status_class", "caller"},
	)

	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	apiInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "api_requests_in_flight",
			Help:      "API requests currently being served",
		},
	)

	rateLimitDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limit_decisions_total",
			Help:      "Rate limiter outcomes per key prefix",
		},
		[]string{"prefix", "decision"},
	)
)

// Metrics returns a gin middleware that collects Prometheus metrics.
// Labels are read after c.Next(), so the caller kind reflects route-level auth.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		apiInFlight.Inc()
		defer apiInFlight.Dec()

		c.Next()

		route := routeLabel(c.FullPath())
		apiRequests.WithLabelValues(
			c.Request.Method,
			route,
			statusClass(c.Writer.Status()),
			callerKind(c),
		).Inc()
		apiLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// routeLabel 등록된 라우트 템플릿 (/api/v1/posts/:id); 매칭 안 된 경로는 하나로 묶음
func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unmatched"
	}
	return fullPath
}

// statusClass 200 -> "2xx"
func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

func callerKind(c *gin.Context) string {
	if GetUsername(c) != "" {
		return callerMember
	}
	return callerAnonymous
}

func recordRateLimit(prefix, decision string) {
	rateLimitDecisions.WithLabelValues(prefix, decision).Inc()
}
