package metrics

import (
	"net/http"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter publishes the latest snapshot of every instance along with
// pipeline counters.
type Exporter struct {
	registry *prometheus.Registry

	snapshotValue  *prometheus.GaugeVec
	lastSampled    *prometheus.GaugeVec
	alertsSent     *prometheus.CounterVec
	alertsHeld     *prometheus.CounterVec
	probeFailures  *prometheus.CounterVec
	storeSnapshots *prometheus.GaugeVec
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		snapshotValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pgradar_snapshot_value",
			Help: "Latest sampled value of each instance metric",
		}, []string{"instance", "metric"}),
		lastSampled: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pgradar_snapshot_timestamp_seconds",
			Help: "Unix timestamp of the latest snapshot per instance",
		}, []string{"instance"}),
		alertsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pgradar_alerts_dispatched_total",
			Help: "Alerts that passed the cooldown gate",
		}, []string{"instance", "type"}),
		alertsHeld: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pgradar_alerts_suppressed_total",
			Help: "Alerts suppressed by an active cooldown",
		}, []string{"instance", "type"}),
		probeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pgradar_probe_failures_total",
			Help: "Failed or timed out instance probes",
		}, []string{"instance"}),
		storeSnapshots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pgradar_store_snapshots",
			Help: "Snapshots held in memory per instance",
		}, []string{"instance"}),
	}

	e.registry.MustRegister(
		e.snapshotValue, e.lastSampled,
		e.alertsSent, e.alertsHeld,
		e.probeFailures, e.storeSnapshots,
	)

	return e
}

// ObserveSnapshot sets a gauge per field. Unavailable readings drop their
// series instead of reporting a value.
func (e *Exporter) ObserveSnapshot(s *models.MetricSnapshot) {
	if e == nil || s == nil {
		return
	}

	for name, field := range snapshotFields {
		v, ok := field(s)
		if !ok {
			e.snapshotValue.DeleteLabelValues(s.InstanceID, name)
			continue
		}

		e.snapshotValue.WithLabelValues(s.InstanceID, name).Set(v)
	}

	e.lastSampled.WithLabelValues(s.InstanceID).Set(float64(s.SampledAt.Unix()))
}

func (e *Exporter) AlertDispatched(instanceID string, alertType models.AlertType) {
	if e == nil {
		return
	}

	e.alertsSent.WithLabelValues(instanceID, string(alertType)).Inc()
}

func (e *Exporter) AlertSuppressed(instanceID string, alertType models.AlertType) {
	if e == nil {
		return
	}

	e.alertsHeld.WithLabelValues(instanceID, string(alertType)).Inc()
}

func (e *Exporter) ProbeFailed(instanceID string) {
	if e == nil {
		return
	}

	e.probeFailures.WithLabelValues(instanceID).Inc()
}

// ObserveStore records the per-instance counts of a store summary.
func (e *Exporter) ObserveStore(summary models.StoreSummary) {
	if e == nil {
		return
	}

	e.storeSnapshots.Reset()

	for id, n := range summary.Instances {
		e.storeSnapshots.WithLabelValues(id).Set(float64(n))
	}
}

// Handler serves the exporter registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
