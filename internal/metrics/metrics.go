package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Operation status labels.
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
)

var (
	// Engine metrics
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_operations_total",
			Help: "Total number of engine operations by kind and status",
		},
		[]string{"operation", "status"},
	)

	Quotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_quotes_total",
			Help: "Total number of swap quotes by direction and price impact severity",
		},
		[]string{"direction", "severity"},
	)

	ConnectedAccounts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vault_connected_accounts",
		Help: "Number of currently connected accounts",
	})

	// Pool metrics
	PoolReserve = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vault_pool_reserve",
			Help: "Current pool reserve per asset",
		},
		[]string{"asset"},
	)

	PoolLpSupply = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vault_pool_lp_supply",
		Help: "Current outstanding LP supply",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vault_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// ObserveOperation counts an engine operation outcome.
func ObserveOperation(operation string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusRejected
	}
	Operations.WithLabelValues(operation, status).Inc()
}

// SetPool publishes the pool reserves and supply.
func SetPool(reserveA, reserveB, lpSupply decimal.Decimal) {
	PoolReserve.WithLabelValues("ALPHA").Set(reserveA.InexactFloat64())
	PoolReserve.WithLabelValues("BETA").Set(reserveB.InexactFloat64())
	PoolLpSupply.Set(lpSupply.InexactFloat64())
}
