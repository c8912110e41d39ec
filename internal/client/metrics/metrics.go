// Package metrics defines and registers the Prometheus metrics the ParkMate
// client emits. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parkmate"

// RequestsTotal counts API calls issued by the request wrapper.
// Labels:
//   - method: HTTP method of the request
//   - status: numeric HTTP status of the final response, or "network_error"
//     when the call never produced one
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of API requests, by method and final status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures wall time of an API call including any
// refresh-and-retry cycle.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of API requests from first attempt to final response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// TokenRefreshTotal counts refresh outcomes.
// Label:
//   - result: "success", "failure", or "reused" (a concurrent caller already
//     rotated the token)
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access-token refresh attempts, by result.",
	},
	[]string{"result"},
)
