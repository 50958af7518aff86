package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relayerSyncHeadersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "sync_headers_total",
		Help:      "Count of header sync passes.",
	}, []string{"network", "status"})
	relayerSyncHeadersDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "sync_headers_duration_seconds",
		Help:      "Duration of a header sync pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	relayerHeadersRelayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "headers_relayed_total",
		Help:      "Number of headers submitted and verified by the relayer.",
	}, []string{"network"})
	relayerProcessClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "process_claims_total",
		Help:      "Count of claim processing passes.",
	}, []string{"network", "status"})
	relayerProcessClaimsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "process_claims_duration_seconds",
		Help:      "Duration of a claim processing pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	relayerClaimsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "claims_finalized_total",
		Help:      "Number of claims finalized by the relayer.",
	}, []string{"network"})
	relayerSourceTip = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "relayer",
		Name:      "source_tip_height",
		Help:      "Latest source-chain height reported by the node.",
	}, []string{"network"})
)

// Relayer tracks the header relayer loop.
type Relayer struct {
	network string
}

func NewRelayer(network model.Network) *Relayer {
	return &Relayer{network: labelOrUnknown(string(network))}
}

// ObserveSyncHeaders records one header sync pass.
func (m Relayer) ObserveSyncHeaders(err error, headers int, started time.Time) {
	status := statusOf(err)
	relayerSyncHeadersTotal.WithLabelValues(m.network, status).Inc()
	relayerSyncHeadersDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	relayerHeadersRelayed.WithLabelValues(m.network).Add(float64(headers))
}

// ObserveProcessClaims records one pass over pending claims.
func (m Relayer) ObserveProcessClaims(err error, finalized int, started time.Time) {
	status := statusOf(err)
	relayerProcessClaimsTotal.WithLabelValues(m.network, status).Inc()
	relayerProcessClaimsDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	relayerClaimsFinalized.WithLabelValues(m.network).Add(float64(finalized))
}

// ObserveTip records the node's best height.
func (m Relayer) ObserveTip(height uint64) {
	relayerSourceTip.WithLabelValues(m.network).Set(float64(height))
}
