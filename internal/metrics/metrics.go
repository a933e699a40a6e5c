// Package metrics exposes Prometheus counters for request gating and
// content mutations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GuardDecisions counts access-guard outcomes per request.
var GuardDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "guard",
		Name:      "decisions_total",
		Help:      "Access guard decisions by outcome.",
	},
	[]string{"outcome"},
)

// ContentMutations counts content create/update/delete calls by outcome.
var ContentMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "content",
		Name:      "mutations_total",
		Help:      "Content mutations by type, operation and outcome.",
	},
	[]string{"type", "operation", "outcome"},
)
