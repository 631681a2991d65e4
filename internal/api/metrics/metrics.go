// Package metrics defines and registers all custom Prometheus metrics for
// the school records API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts completed self-service signups.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created via signup.",
	},
)

// RegisterSessionsGauge exposes the live session count as a gauge sampled
// from the registry at scrape time, so the metric cannot drift from the
// registry's own bookkeeping.
func RegisterSessionsGauge(count func() int) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Current number of live sessions in the in-process registry.",
		},
		func() float64 { return float64(count()) },
	)
}

// ── Record metrics ────────────────────────────────────────────────────────────

// StudentsMutationsTotal counts student record mutations.
// Label:
//   - operation: "create", "update", or "delete"
var StudentsMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_mutations_total",
		Help:      "Total number of student record mutations, by operation.",
	},
	[]string{"operation"},
)
