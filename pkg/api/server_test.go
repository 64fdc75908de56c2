package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfreeman451/pgradar/pkg/metrics"
	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	store     *metrics.Store
	inspector *MockStoreInspector
	cooldowns *MockCooldownManager
	http      *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &testServer{
		store:     metrics.NewStore(metrics.StoreConfig{RetentionMinutes: 24 * 60}),
		inspector: NewMockStoreInspector(ctrl),
		cooldowns: NewMockCooldownManager(ctrl),
	}

	exporter := metrics.NewExporter()
	exporter.ProbeFailed("db1")

	srv := NewAPIServer(ts.store, ts.inspector, ts.cooldowns, WithMetricsHandler(exporter.Handler()))
	ts.http = httptest.NewServer(srv.Handler())
	t.Cleanup(ts.http.Close)

	return ts
}

func (ts *testServer) do(t *testing.T, method, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.http.URL+path, http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHistoryAndCount(t *testing.T) {
	ts := newTestServer(t)
	now := time.Now()

	ts.store.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-3 * time.Hour), TotalConnections: 1})
	ts.store.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-10 * time.Minute), TotalConnections: 2})
	ts.store.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-time.Minute), TotalConnections: 3})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLen    int
	}{
		{name: "default window", path: "/api/instances/db1/history", wantStatus: http.StatusOK, wantLen: 2},
		{name: "wide window", path: "/api/instances/db1/history?hours=4", wantStatus: http.StatusOK, wantLen: 3},
		{name: "zero window", path: "/api/instances/db1/history?hours=0", wantStatus: http.StatusOK, wantLen: 0},
		{name: "unknown instance", path: "/api/instances/db9/history", wantStatus: http.StatusOK, wantLen: 0},
		{name: "bad hours", path: "/api/instances/db1/history?hours=abc", wantStatus: http.StatusBadRequest},
		{name: "negative hours", path: "/api/instances/db1/history?hours=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.do(t, http.MethodGet, tt.path)
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var body HistoryResponse
			decode(t, resp, &body)
			require.NotNil(t, body.Snapshots)
			assert.Len(t, body.Snapshots, tt.wantLen)
		})
	}

	var count CountResponse
	decode(t, ts.do(t, http.MethodGet, "/api/instances/db1/count"), &count)
	assert.Equal(t, CountResponse{InstanceID: "db1", Count: 3}, count)
}

func TestRates(t *testing.T) {
	ts := newTestServer(t)
	now := time.Now().Truncate(time.Second)

	ts.store.Add("db1", &models.MetricSnapshot{
		SampledAt:              now.Add(-20 * time.Second),
		TotalDatabaseSizeBytes: models.Value(1000),
	})
	ts.store.Add("db1", &models.MetricSnapshot{
		SampledAt:              now.Add(-10 * time.Second),
		TotalDatabaseSizeBytes: models.Value(3000),
	})

	var body RatesResponse
	resp := ts.do(t, http.MethodGet, "/api/instances/db1/rates?metric=total_database_size_bytes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)

	require.Len(t, body.Rates, 1)
	assert.InDelta(t, 200.0, body.Rates[0].Value, 1e-9)
	assert.True(t, body.Rates[0].At.Equal(now.Add(-10*time.Second)))

	resp = ts.do(t, http.MethodGet, "/api/instances/db1/rates?metric=bogus")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStoreEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.inspector.EXPECT().Summary().Return(models.StoreSummary{
		Instances:        map[string]int{"db1": 4},
		TotalSnapshots:   4,
		RetentionMinutes: 60,
	})
	ts.inspector.EXPECT().RetentionMinutes().Return(60)
	ts.inspector.EXPECT().Persistent().Return(true)

	var summary models.StoreSummary
	decode(t, ts.do(t, http.MethodGet, "/api/store/summary"), &summary)
	assert.Equal(t, 4, summary.TotalSnapshots)
	assert.Equal(t, map[string]int{"db1": 4}, summary.Instances)

	var retention RetentionResponse
	decode(t, ts.do(t, http.MethodGet, "/api/store/retention"), &retention)
	assert.Equal(t, RetentionResponse{RetentionMinutes: 60, Persistent: true}, retention)
}

func TestCooldownEndpoints(t *testing.T) {
	ts := newTestServer(t)
	fired := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	gomock.InOrder(
		ts.cooldowns.EXPECT().Cooldowns().Return(nil),
		ts.cooldowns.EXPECT().Cooldowns().Return([]models.CooldownEntry{
			{InstanceID: "db1", Type: models.AlertDeadlocks, LastFiredAt: fired},
		}),
	)
	ts.cooldowns.EXPECT().ClearCooldown("db1", models.AlertDeadlocks)
	ts.cooldowns.EXPECT().ClearAllCooldowns()

	resp := ts.do(t, http.MethodGet, "/api/cooldowns")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	var entries []models.CooldownEntry
	decode(t, ts.do(t, http.MethodGet, "/api/cooldowns"), &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AlertDeadlocks, entries[0].Type)
	assert.True(t, entries[0].LastFiredAt.Equal(fired))

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/cooldowns/db1/DEADLOCKS").StatusCode)
	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/cooldowns").StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `pgradar_probe_failures_total{instance="db1"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/cooldowns")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
