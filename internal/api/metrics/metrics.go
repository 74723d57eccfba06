// Package metrics defines the custom Prometheus metrics for the hospital
// administration service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordMutationsTotal counts successful writes against the store.
// Labels:
//   - entity: "patient", "doctor", "appointment", "invoice"
//   - action: "create", "update", "delete", "cancel", "pay"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// CSVExportsTotal counts CSV downloads.
// Label:
//   - resource: "patients" or "invoices"
var CSVExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_exports_total",
		Help:      "Total number of CSV exports served, by resource.",
	},
	[]string{"resource"},
)
