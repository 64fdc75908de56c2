// Package alerts evaluates snapshots against per-instance thresholds and
// fans fired conditions out to notification channels.
package alerts

//go:generate mockgen -destination=mock_alerts.go -package=alerts github.com/mfreeman451/pgradar/pkg/alerts Thresholds,ThresholdProvider,OverviewProvider,Channel

import (
	"context"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// Thresholds exposes the configured limit of each metric. ok is false when
// the limit is missing or invalid, which disables that metric.
type Thresholds interface {
	ConnectionPercent() (float64, bool)
	BlockedQueries() (float64, bool)
	CacheHitRatio() (float64, bool)
	DeadlockRate() (float64, bool)
	ReplicationLagSeconds() (float64, bool)
	TableBloatPercent() (float64, bool)
	XIDWraparoundPercent() (float64, bool)
	QueryMeanTimeMs() (float64, bool)
}

// ThresholdProvider resolves per-instance alert configuration.
type ThresholdProvider interface {
	AlertingEnabled(instanceID string) bool
	// Thresholds returns false when the instance has no threshold config.
	Thresholds(instanceID string) (*models.ThresholdConfig, bool)
}

// OverviewProvider supplies server context for alert details.
type OverviewProvider interface {
	Overview(ctx context.Context, instanceID string) (*models.InstanceOverview, error)
}

// Channel delivers alerts to one destination.
type Channel interface {
	Name() string
	// Accepts reports whether the channel can deliver this alert, e.g. an
	// email channel with no recipient for the instance.
	Accepts(alert *Alert) bool
	Send(ctx context.Context, alert *Alert) error
}

// Recorder observes dispatch decisions.
type Recorder interface {
	AlertDispatched(instanceID string, alertType models.AlertType)
	AlertSuppressed(instanceID string, alertType models.AlertType)
}

var _ Thresholds = (*models.ThresholdConfig)(nil)
