package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, e *Exporter) string {
	t.Helper()

	srv := httptest.NewServer(e.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func TestExporterObserveSnapshot(t *testing.T) {
	e := NewExporter()

	e.ObserveSnapshot(&models.MetricSnapshot{
		InstanceID:       "db1",
		SampledAt:        time.Unix(1700000000, 0),
		TotalConnections: 42,
		CacheHitRatio:    models.Value(0.97),
	})

	out := scrape(t, e)

	assert.Contains(t, out, `pgradar_snapshot_value{instance="db1",metric="total_connections"} 42`)
	assert.Contains(t, out, `pgradar_snapshot_value{instance="db1",metric="cache_hit_ratio"} 0.97`)
	assert.NotContains(t, out, `metric="replication_lag_seconds"`)
	assert.Contains(t, out, `pgradar_snapshot_timestamp_seconds{instance="db1"} 1.7e+09`)
}

func TestExporterCounters(t *testing.T) {
	e := NewExporter()

	e.AlertDispatched("db1", models.AlertConnections)
	e.AlertSuppressed("db1", models.AlertConnections)
	e.AlertSuppressed("db1", models.AlertConnections)
	e.ProbeFailed("db2")
	e.ObserveStore(models.StoreSummary{Instances: map[string]int{"db1": 3}})

	out := scrape(t, e)

	assert.Contains(t, out, `pgradar_alerts_dispatched_total{instance="db1",type="CONNECTIONS"} 1`)
	assert.Contains(t, out, `pgradar_alerts_suppressed_total{instance="db1",type="CONNECTIONS"} 2`)
	assert.Contains(t, out, `pgradar_probe_failures_total{instance="db2"} 1`)
	assert.Contains(t, out, `pgradar_store_snapshots{instance="db1"} 3`)
}

func TestNilExporterIsSafe(t *testing.T) {
	var e *Exporter

	assert.NotPanics(t, func() {
		e.ObserveSnapshot(&models.MetricSnapshot{InstanceID: "db1"})
		e.AlertDispatched("db1", models.AlertDeadlocks)
		e.AlertSuppressed("db1", models.AlertDeadlocks)
		e.ProbeFailed("db1")
		e.ObserveStore(models.StoreSummary{})
	})
}
