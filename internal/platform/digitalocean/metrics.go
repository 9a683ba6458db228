package digitalocean

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nereid",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of DigitalOcean API requests by resource, method and status",
		},
		[]string{"resource", "method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nereid",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of DigitalOcean API requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"resource", "method"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

func observeRequest(resource, method string, resp *http.Response, err error, elapsed time.Duration) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(resource, method, status).Inc()
	requestDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}
