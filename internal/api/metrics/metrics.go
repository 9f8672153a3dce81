// Package metrics defines and registers the custom Prometheus metrics for the
// shop API. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level request metrics come from the echoprometheus
// middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// CategoryWritesTotal counts successful category mutations.
// Label:
//   - op: "create", "update", or "delete"
var CategoryWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_writes_total",
		Help:      "Total number of successful category create/update/delete operations.",
	},
	[]string{"op"},
)

// ProductsCreatedTotal counts successfully created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// UsersRegisteredTotal counts successful self-registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of self-registered user accounts.",
	},
)

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
