package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditExportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "audit",
		Name:      "export_total",
		Help:      "Count of operation log export batches.",
	}, []string{"network", "status"})
	auditExportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "audit",
		Name:      "export_duration_seconds",
		Help:      "Duration of exporting one batch, including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	auditExportSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "audit",
		Name:      "export_batch_size",
		Help:      "Number of entries per export batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
	auditSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "audit",
		Name:      "skipped_entries_total",
		Help:      "Entries not queued because they were already exported.",
	}, []string{"network"})
)

// Audit tracks the operation log exporter.
type Audit struct {
	network string
}

func NewAudit(network model.Network) *Audit {
	return &Audit{network: labelOrUnknown(string(network))}
}

// ObserveExport records one export batch.
func (m Audit) ObserveExport(err error, entries int, started time.Time) {
	status := statusOf(err)
	auditExportTotal.WithLabelValues(m.network, status).Inc()
	auditExportDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	auditExportSize.WithLabelValues(m.network).Observe(float64(entries))
}

// ObserveSkipped counts entries dropped as already exported.
func (m Audit) ObserveSkipped(entries int) {
	auditSkippedTotal.WithLabelValues(m.network).Add(float64(entries))
}
