// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the web front.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes recorded in LoginAttemptsTotal.
const (
	LoginAuthenticated  = "authenticated"
	LoginRejected       = "rejected"
	LoginInvalid        = "invalid"
	LoginTransportError = "transport_error"
	LoginUnexpected     = "unexpected"
	LoginStoreError     = "store_error"
)

var (
	// Counts form submissions by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapweb_login_attempts_total",
			Help: "Total number of login form submissions (by result).",
		},
		[]string{"result"},
	)

	// Measures the round trip of a login submission to the backend.
	LoginDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snapweb_login_duration_seconds",
			Help:    "Duration of login submissions in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms → ~10s
		},
		[]string{"result"},
	)

	// Counts requests forwarded to the backend by the /api proxy.
	ProxyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapweb_proxy_requests_total",
			Help: "Total number of proxied API requests (by method, status and authorization).",
		},
		[]string{"method", "status", "authorized"},
	)

	// Tracks total errors (aggregated).
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapweb_errors_total",
			Help: "Count of web front errors by component.",
		},
		[]string{"component", "reason"},
	)
)

// ObserveLogin counts a login submission and records how long it took.
func ObserveLogin(result string, start time.Time) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
	LoginDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

func IncProxyRequest(method, status string, authorized bool) {
	a := "false"
	if authorized {
		a = "true"
	}
	ProxyRequestsTotal.WithLabelValues(method, status, a).Inc()
}

func IncError(component, reason string) {
	ErrorsTotal.WithLabelValues(component, reason).Inc()
}
