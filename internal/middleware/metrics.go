package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation type.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "inkwell_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// ViewIncrements counts post view-counter increments issued to the database.
var ViewIncrements = promauto.NewCounter(prometheus.CounterOpts{
	Name: "inkwell_post_view_increments_total",
	Help: "Total number of post view-counter increments",
})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Prometheus HTTP middleware for the given service
// name. The underlying collectors register once per process.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the Fiber handler that records HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
