// Package metrics defines the console's Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings;
// everything registers with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storectl"

// RequestsTotal counts store API requests issued by the HTTP client.
// Labels:
//   - method: HTTP method
//   - status: numeric response status, or "error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of store API requests, by method and status.",
	},
	[]string{"method", "status"},
)

// TokenClearsTotal counts unilateral token clears triggered by 401
// responses inside the HTTP client.
var TokenClearsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_clears_total",
		Help:      "Total number of durable token clears caused by 401 responses.",
	},
)

// CacheLookupsTotal counts collection cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of collection cache lookups, by result.",
	},
	[]string{"result"},
)

// CacheInvalidationsTotal counts cache-key invalidations after mutations
// and logouts.
var CacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total number of cache invalidations, by key.",
	},
	[]string{"key"},
)
