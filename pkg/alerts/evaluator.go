package alerts

import (
	"fmt"

	"github.com/mfreeman451/pgradar/pkg/models"
)

type rule struct {
	alertType models.AlertType
	title     string
	message   string
	reading   func(s *models.MetricSnapshot) (float64, bool)
	limit     func(t Thresholds) (float64, bool)
	breached  func(value, limit float64) bool
}

func atLeast(v, limit float64) bool { return v >= limit }

func above(v, limit float64) bool { return v > limit }

func below(v, limit float64) bool { return v < limit }

func count(n int64) (float64, bool) { return float64(n), true }

var rules = []rule{
	{
		alertType: models.AlertConnections,
		title:     "High connection usage",
		message:   "Total connections at %.1f%% of max_connections (threshold %.1f%%)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.ConnectionPercent() },
		limit:     Thresholds.ConnectionPercent,
		breached:  atLeast,
	},
	{
		alertType: models.AlertBlockedQueries,
		title:     "Blocked queries",
		message:   "%.0f queries are blocked waiting on locks (threshold %.0f)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return count(s.BlockedQueries) },
		limit:     Thresholds.BlockedQueries,
		breached:  atLeast,
	},
	{
		alertType: models.AlertCacheHitRatio,
		title:     "Low cache hit ratio",
		message:   "Cache hit ratio dropped to %.4f (threshold %.4f)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.CacheHitRatio.Get() },
		limit:     Thresholds.CacheHitRatio,
		breached:  below,
	},
	{
		alertType: models.AlertDeadlocks,
		title:     "Deadlocks detected",
		message:   "%.1f deadlocks per hour (threshold %.1f)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.DeadlocksPerHour.Get() },
		limit:     Thresholds.DeadlockRate,
		breached:  above,
	},
	{
		alertType: models.AlertReplicationLag,
		title:     "Replication lag",
		message:   "Replication lag is %.1fs (threshold %.1fs)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.ReplicationLagSeconds.Get() },
		limit:     Thresholds.ReplicationLagSeconds,
		breached:  above,
	},
	{
		alertType: models.AlertTableBloat,
		title:     "Table bloat",
		message:   "Table bloat at %.1f%% (threshold %.1f%%)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.TableBloatPercent.Get() },
		limit:     Thresholds.TableBloatPercent,
		breached:  above,
	},
	{
		alertType: models.AlertXIDWraparound,
		title:     "Transaction ID wraparound risk",
		message:   "Oldest XID is %.1f%% of the way to wraparound (threshold %.1f%%)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.XIDWraparoundPercent.Get() },
		limit:     Thresholds.XIDWraparoundPercent,
		breached:  above,
	},
	{
		alertType: models.AlertQueryMeanTime,
		title:     "Slow queries",
		message:   "Mean query time is %.1fms (threshold %.1fms)",
		reading:   func(s *models.MetricSnapshot) (float64, bool) { return s.QueryMeanTimeMs.Get() },
		limit:     Thresholds.QueryMeanTimeMs,
		breached:  above,
	},
}

// Evaluate returns every threshold breach in a snapshot. A metric the
// snapshot does not carry is skipped before its threshold is read, and a
// threshold that is not configured disables its metric.
func Evaluate(snapshot *models.MetricSnapshot, thresholds Thresholds) []models.TriggeredCondition {
	if snapshot == nil || thresholds == nil {
		return nil
	}

	var triggered []models.TriggeredCondition

	for i := range rules {
		r := &rules[i]

		value, ok := r.reading(snapshot)
		if !ok {
			continue
		}

		limit, ok := r.limit(thresholds)
		if !ok || !r.breached(value, limit) {
			continue
		}

		triggered = append(triggered, models.TriggeredCondition{
			InstanceID: snapshot.InstanceID,
			Type:       r.alertType,
			Title:      fmt.Sprintf("%s on %s", r.title, snapshot.InstanceID),
			Message:    fmt.Sprintf(r.message, value, limit),
			Value:      value,
			Threshold:  limit,
		})
	}

	return triggered
}
