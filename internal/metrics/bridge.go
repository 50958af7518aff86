package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bridgeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "bridge",
		Name:      "operations_total",
		Help:      "Count of bridge operations by outcome.",
	}, []string{"operation", "network", "status"})
	bridgeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "bridge",
		Name:      "operation_duration_seconds",
		Help:      "Duration of bridge operations, including indexer calls.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"operation", "network", "status"})
	bridgeRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "bridge",
		Name:      "rejections_total",
		Help:      "Count of rejected bridge operations by error code.",
	}, []string{"operation", "network", "kind", "code"})
)

// Bridge tracks bridge operation outcomes.
type Bridge struct {
	network string
}

func NewBridge(network model.Network) *Bridge {
	return &Bridge{network: labelOrUnknown(string(network))}
}

// Observe records one operation. Rejections are also counted by error code.
func (m Bridge) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	bridgeOperationsTotal.WithLabelValues(operation, m.network, status).Inc()
	bridgeOperationDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
	if err != nil {
		bridgeRejectionsTotal.WithLabelValues(operation, m.network, string(bridgeerr.KindOf(err)), bridgeerr.CodeOf(err)).Inc()
	}
}
