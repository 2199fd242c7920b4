// Package metrics defines the custom Prometheus metrics for the catering API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at init; the /metrics endpoint
// and the HTTP middleware are wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catering"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// EventsBookedTotal counts events created by clients.
var EventsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_booked_total",
		Help:      "Total number of events booked.",
	},
)

// EventRequestsFiledTotal counts quote inquiries filed by clients.
var EventRequestsFiledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_requests_filed_total",
		Help:      "Total number of event requests filed.",
	},
)

// DishesCreatedTotal counts dishes added to the catalog.
var DishesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dishes_created_total",
		Help:      "Total number of dishes added to the catalog.",
	},
)
