// Package metrics holds the application's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsCreated counts accepted song requests.
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "song_requests_created_total",
		Help: "Number of song requests submitted.",
	})

	// StatusUpdates counts status changes by target status.
	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "song_requests_status_updates_total",
		Help: "Number of song request status updates, differentiated by target status.",
	}, []string{"status"})

	// GateFallbacks counts open flag operations served from memory.
	GateFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "request_status_fallback_total",
		Help: "Number of open flag reads and writes answered by the in-memory fallback.",
	}, []string{"operation"})
)
