package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artisan_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artisan_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	mintsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artisan_nft_mints_total",
		Help: "Mint attempts by outcome",
	}, []string{"outcome"})

	moderationActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artisan_moderation_actions_total",
		Help: "Moderation actions by entity and action",
	}, []string{"entity", "action"})
)

// ObserveMint records a mint attempt outcome ("minted", "not_eligible", "not_found")
func ObserveMint(outcome string) {
	mintsTotal.WithLabelValues(outcome).Inc()
}

// ObserveModerationAction records an applied moderation action
func ObserveModerationAction(entity, action string) {
	moderationActionsTotal.WithLabelValues(entity, action).Inc()
}

// Middleware tracks per-request counters and latency
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
