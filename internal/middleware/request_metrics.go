package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fiufit/trainings/internal/telemetry/metrics"
)

const unknownRoute = "unknown"

// RequestMetrics must be applied with router.Use so mux has matched the route
// before it runs; the route name keeps label cardinality bounded.
func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			metricsManager.GaugeRequests.Inc()
			defer metricsManager.GaugeRequests.Dec()

			begin := time.Now()
			resp := &responseWriter{respWriter, http.StatusOK}

			// handler call
			next.ServeHTTP(resp, req)

			labels := prometheus.Labels{
				"route":  routeName(req),
				"method": req.Method,
			}
			status := strconv.Itoa(resp.statusCode)

			metricsManager.HistogramRequestDuration.
				WithLabelValues(labels["route"], labels["method"], status).
				Observe(time.Since(begin).Seconds())

			labels["status"] = status
			metricsManager.CounterRequests.With(labels).Inc()
		})
	}
}

func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return unknownRoute
	}
	if name := route.GetName(); name != "" {
		return name
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return unknownRoute
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
