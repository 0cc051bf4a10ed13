// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ems_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_login_attempts_total",
			Help: "Login attempts by portal and outcome",
		},
		[]string{"role", "outcome"},
	)

	sessionExpiries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ems_session_expiries_total",
			Help: "Sessions ended by the inactivity monitor",
		},
		[]string{"role"},
	)
)

// Middleware records request count and latency per route pattern.
// The route pattern, not the raw path, is used as label to bound cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Route().Path
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}

// LoginAttempt counts one login attempt
func LoginAttempt(role, outcome string) {
	loginAttempts.WithLabelValues(role, outcome).Inc()
}

// SessionExpired counts one inactivity expiry
func SessionExpired(role string) {
	sessionExpiries.WithLabelValues(role).Inc()
}
