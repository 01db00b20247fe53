// Package metrics defines and registers all custom Prometheus metrics for
// the ordering portal. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commandit"

// OrdersSubmittedTotal counts successfully submitted orders.
// Label:
//   - type: the order category (e.g. "Papeterie", "Informatique")
var OrdersSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of supply orders submitted successfully.",
	},
	[]string{"type"},
)

// DispatchErrorsTotal counts mail dispatches that failed at the transport.
var DispatchErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_errors_total",
		Help:      "Total number of order notification mails that failed to send.",
	},
)

// StatusTransitionsTotal counts applied order status transitions.
// Label:
//   - to: the status the order moved into
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions applied.",
	},
	[]string{"to"},
)

// LoginsTotal counts login outcomes.
// Label:
//   - result: "success", "failure", or "blocked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)
