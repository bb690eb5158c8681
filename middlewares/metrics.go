package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request count, error count and latency per route.
type Metrics struct {
	reqs *prometheus.CounterVec
	errs *prometheus.CounterVec
	durs *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	const namespace = "kostify"
	const subsystem = "http"

	m := &Metrics{
		reqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of handled API requests",
		}, []string{"method", "route"}),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Number of API requests answered with a 4xx or 5xx status",
		}, []string{"method", "route", "code"}),
		durs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.reqs, m.errs, m.durs)
	return m
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.reqs.WithLabelValues(method, route).Inc()
		m.durs.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if code := c.Writer.Status(); code >= 400 {
			m.errs.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
		}
	}
}
