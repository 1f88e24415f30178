// Package metrics exposes the Prometheus collectors tracked by the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ApprovalDecisions counts stage decisions recorded on graduation requests.
	ApprovalDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agms_approval_decisions_total",
		Help: "Number of approval stage decisions recorded, by stage and decision.",
	}, []string{"stage", "decision"})

	// ClearanceUpdates counts clearance flag changes per office.
	ClearanceUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agms_clearance_updates_total",
		Help: "Number of clearance status updates recorded, by office.",
	}, []string{"office"})

	// Finalizations counts terminal workflow events.
	Finalizations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agms_finalizations_total",
		Help: "Number of finalization events, by kind (clearance, honors_list).",
	}, []string{"kind"})

	// LoginAttempts counts authentication attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agms_login_attempts_total",
		Help: "Number of login attempts, by outcome (success, failure).",
	}, []string{"outcome"})
)
