// Package models pkg/models/metrics.go
package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Gauge is an optional metric reading. A probe reports Unavailable() when the
// metric does not apply to an instance (no replicas, missing extension, ...),
// which keeps it distinct from a genuine zero.
type Gauge struct {
	value float64
	ok    bool
}

// Value returns an available gauge holding v.
func Value(v float64) Gauge {
	return Gauge{value: v, ok: true}
}

// Unavailable returns a gauge that must not be evaluated.
func Unavailable() Gauge {
	return Gauge{}
}

// Get returns the reading and whether it is available.
func (g Gauge) Get() (float64, bool) {
	return g.value, g.ok
}

func (g Gauge) Available() bool {
	return g.ok
}

// Ptr returns nil for an unavailable gauge.
func (g Gauge) Ptr() *float64 {
	if !g.ok {
		return nil
	}

	v := g.value

	return &v
}

// GaugeFromPtr is the inverse of Ptr.
func GaugeFromPtr(v *float64) Gauge {
	if v == nil {
		return Unavailable()
	}

	return Value(*v)
}

func (g Gauge) MarshalJSON() ([]byte, error) {
	if !g.ok {
		return []byte("null"), nil
	}

	return json.Marshal(g.value)
}

func (g *Gauge) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*g = Unavailable()
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*g = Value(v)

	return nil
}

// MetricSnapshot is one sampled reading of an instance's health metrics.
type MetricSnapshot struct {
	InstanceID string    `json:"instance_id"`
	SampledAt  time.Time `json:"sampled_at"`

	TotalConnections  int64 `json:"total_connections"`
	MaxConnections    int64 `json:"max_connections"`
	ActiveQueries     int64 `json:"active_queries"`
	IdleConnections   int64 `json:"idle_connections"`
	IdleInTransaction int64 `json:"idle_in_transaction"`
	BlockedQueries    int64 `json:"blocked_queries"`

	LongestQuerySeconds       Gauge `json:"longest_query_seconds"`
	LongestTransactionSeconds Gauge `json:"longest_transaction_seconds"`
	CacheHitRatio             Gauge `json:"cache_hit_ratio"`
	TotalDatabaseSizeBytes    Gauge `json:"total_database_size_bytes"`
	DeadlocksPerHour          Gauge `json:"deadlocks_per_hour"`
	ReplicationLagSeconds     Gauge `json:"replication_lag_seconds"`
	TableBloatPercent         Gauge `json:"table_bloat_percent"`
	XIDWraparoundPercent      Gauge `json:"xid_wraparound_percent"`
	QueryMeanTimeMs           Gauge `json:"query_mean_time_ms"`
}

// ConnectionPercent returns total/max*100, or false when max is unknown.
func (s *MetricSnapshot) ConnectionPercent() (float64, bool) {
	if s.MaxConnections <= 0 {
		return 0, false
	}

	return float64(s.TotalConnections) / float64(s.MaxConnections) * 100, true
}

// MaxHistoryHours caps history windows so the lookback cannot overflow a
// time.Duration. A longer window reads the same as this one.
const MaxHistoryHours = 100 * 365 * 24

// HistoryWindow returns the lookback for a window of hours.
func HistoryWindow(hours int) time.Duration {
	return time.Duration(min(hours, MaxHistoryHours)) * time.Hour
}

// StoreSummary is the diagnostic view of the in-memory snapshot store.
type StoreSummary struct {
	Instances        map[string]int `json:"instances"`
	TotalSnapshots   int            `json:"total_snapshots"`
	RetentionMinutes int            `json:"retention_minutes"`
	Persistent       bool           `json:"persistent"`
	Oldest           *time.Time     `json:"oldest,omitempty"`
	Newest           *time.Time     `json:"newest,omitempty"`
}
