package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stayledger", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stayledger", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	bookingOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stayledger", Name: "booking_outcomes_total", Help: "Booking command outcomes."},
		[]string{"operation", "outcome"}, // outcome: ok|conflict|rejected|error
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(httpRequests, httpLatency, bookingOutcomes)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) gin.HandlerFunc {
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveBooking records the outcome of a booking command for alerting on
// conflict and error rates.
func ObserveBooking(operation string, status int) {
	outcome := "ok"
	switch {
	case status == http.StatusConflict:
		outcome = "conflict"
	case status >= 400 && status < 500:
		outcome = "rejected"
	case status >= 500:
		outcome = "error"
	}
	bookingOutcomes.WithLabelValues(operation, outcome).Inc()
}
