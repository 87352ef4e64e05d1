// Package metrics defines and registers the custom Prometheus metrics of the
// marketplace API. HTTP request metrics come from echoprometheus; this file
// only holds the domain counters.
//
// Metrics are registered with the default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessDeniedTotal counts requests rejected by the access gate or role resolver.
// Label:
//   - reason: "missing_credential", "invalid_credential", "role_mismatch", "unknown_principal"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts credentials minted by login and profile upserts.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

var PurchasesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_created_total",
		Help:      "Total number of purchases stored.",
	},
)

// IdempotentReplaysTotal counts purchase requests answered from the idempotency store.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_idempotent_replays_total",
		Help:      "Total number of purchase requests replayed via Idempotency-Key.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts new listings. Keep it unlabeled: category_id is
// unvalidated client input.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products listed.",
	},
)
