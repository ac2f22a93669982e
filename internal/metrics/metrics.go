// Package metrics defines all custom Prometheus metrics for the helpdesk
// client. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry via promauto; the fake
// gateway exposes them (together with its HTTP metrics) on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "helpdesk"

// AuthAttemptsTotal counts auth-flow operations by outcome.
// Labels:
//   - op: "login", "register", "forgot_password", "logout"
//   - result: "ok", "rejected" (validation), "error" (gateway/storage)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of auth-flow operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// DirectoryFetchesTotal counts directory fetches that completed.
// Labels:
//   - kind: "first_page", "append", "by_id"
//   - result: "ok" or "error"
var DirectoryFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_fetches_total",
		Help:      "Total number of completed directory fetches, by kind and result.",
	},
	[]string{"kind", "result"},
)

// StaleResponsesTotal counts directory responses discarded because a newer
// request was issued while they were in flight.
var StaleResponsesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_stale_responses_total",
		Help:      "Total number of directory responses discarded as stale.",
	},
)

// DebounceCancelledTotal counts pending search timers replaced by a newer
// keystroke before firing.
var DebounceCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_debounce_cancelled_total",
		Help:      "Total number of pending search timers cancelled by new input.",
	},
)

// LocalWritesTotal counts committed writes to the on-device user list.
// Label:
//   - op: "create", "update", "delete"
var LocalWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "local_user_writes_total",
		Help:      "Total number of committed local user-list writes, by operation.",
	},
	[]string{"op"},
)
