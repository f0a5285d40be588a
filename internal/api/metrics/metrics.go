// Package metrics defines and registers all custom Prometheus metrics for the
// food ordering API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodorder"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "conflict", "unauthorized", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// TokenRefreshTotal counts refresh-token exchanges.
// Label:
//   - result: "valid" (access token reissued), "recovered" (expired token
//     exchanged for a new pair), "rejected", "error"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh-token exchanges, by outcome.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ImagesUploadedTotal counts images accepted at the API and stored.
// Label:
//   - folder: logical bucket folder ("product", "topping", "side-option",
//     "menu", "profile")
var ImagesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_uploaded_total",
		Help:      "Total number of images uploaded to object storage, by folder.",
	},
	[]string{"folder"},
)

// CatalogWritesTotal counts admin mutations against the catalog.
// Labels:
//   - entity: "category", "product", "topping", "side_option", "menu"
//   - action: "create", "update", "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of catalog mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)
