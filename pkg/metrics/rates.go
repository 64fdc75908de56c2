package metrics

import (
	"fmt"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// RatePoint is one observation of a monotonic counter. A nil Value marks a
// missing reading.
type RatePoint struct {
	Value *float64
	At    time.Time
}

// ComputeRates turns an ordered counter history into per-second rates, one
// per consecutive pair. Missing values, non-positive elapsed time and counter
// resets yield 0.
func ComputeRates(points []RatePoint) []float64 {
	if len(points) <= 1 {
		return []float64{}
	}

	rates := make([]float64, len(points)-1)

	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]

		if prev.Value == nil || cur.Value == nil {
			continue
		}

		elapsed := cur.At.Sub(prev.At).Seconds()
		if elapsed <= 0 {
			continue
		}

		delta := *cur.Value - *prev.Value
		if delta < 0 {
			continue
		}

		rates[i-1] = delta / elapsed
	}

	return rates
}

// FieldExtractor reads one numeric field from a snapshot. ok is false when
// the reading is unavailable.
type FieldExtractor func(s *models.MetricSnapshot) (float64, bool)

func intField(f func(s *models.MetricSnapshot) int64) FieldExtractor {
	return func(s *models.MetricSnapshot) (float64, bool) {
		return float64(f(s)), true
	}
}

func gaugeField(f func(s *models.MetricSnapshot) models.Gauge) FieldExtractor {
	return func(s *models.MetricSnapshot) (float64, bool) {
		return f(s).Get()
	}
}

var snapshotFields = map[string]FieldExtractor{
	"total_connections":   intField(func(s *models.MetricSnapshot) int64 { return s.TotalConnections }),
	"max_connections":     intField(func(s *models.MetricSnapshot) int64 { return s.MaxConnections }),
	"active_queries":      intField(func(s *models.MetricSnapshot) int64 { return s.ActiveQueries }),
	"idle_connections":    intField(func(s *models.MetricSnapshot) int64 { return s.IdleConnections }),
	"idle_in_transaction": intField(func(s *models.MetricSnapshot) int64 { return s.IdleInTransaction }),
	"blocked_queries":     intField(func(s *models.MetricSnapshot) int64 { return s.BlockedQueries }),
	"longest_query_seconds": gaugeField(func(s *models.MetricSnapshot) models.Gauge {
		return s.LongestQuerySeconds
	}),
	"longest_transaction_seconds": gaugeField(func(s *models.MetricSnapshot) models.Gauge {
		return s.LongestTransactionSeconds
	}),
	"cache_hit_ratio": gaugeField(func(s *models.MetricSnapshot) models.Gauge { return s.CacheHitRatio }),
	"total_database_size_bytes": gaugeField(func(s *models.MetricSnapshot) models.Gauge {
		return s.TotalDatabaseSizeBytes
	}),
	"deadlocks_per_hour": gaugeField(func(s *models.MetricSnapshot) models.Gauge { return s.DeadlocksPerHour }),
	"replication_lag_seconds": gaugeField(func(s *models.MetricSnapshot) models.Gauge {
		return s.ReplicationLagSeconds
	}),
	"table_bloat_percent": gaugeField(func(s *models.MetricSnapshot) models.Gauge { return s.TableBloatPercent }),
	"xid_wraparound_percent": gaugeField(func(s *models.MetricSnapshot) models.Gauge {
		return s.XIDWraparoundPercent
	}),
	"query_mean_time_ms": gaugeField(func(s *models.MetricSnapshot) models.Gauge { return s.QueryMeanTimeMs }),
}

// FieldByName resolves a snapshot field by its JSON name.
func FieldByName(name string) (FieldExtractor, error) {
	f, ok := snapshotFields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	return f, nil
}

// SnapshotRates computes per-second rates of one field across snapshots.
func SnapshotRates(snapshots []models.MetricSnapshot, field FieldExtractor) []float64 {
	points := make([]RatePoint, len(snapshots))

	for i := range snapshots {
		points[i].At = snapshots[i].SampledAt

		if v, ok := field(&snapshots[i]); ok {
			points[i].Value = &v
		}
	}

	return ComputeRates(points)
}
