package sampler

//go:generate mockgen -destination=mock_sampler.go -package=sampler github.com/mfreeman451/pgradar/pkg/sampler Probe,SnapshotWriter,Checker,InstanceSource

import (
	"context"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// Probe produces a snapshot for one instance.
type Probe interface {
	Snapshot(ctx context.Context, instanceID string) (*models.MetricSnapshot, error)
}

// SnapshotWriter stores sampled snapshots.
type SnapshotWriter interface {
	Add(instanceID string, snapshot *models.MetricSnapshot)
}

// Checker runs threshold alerting for a stored snapshot.
type Checker interface {
	AlertingEnabled(instanceID string) bool
	CheckAndAlert(ctx context.Context, instanceID string, snapshot *models.MetricSnapshot) error
}

// InstanceSource lists the instances to sample on each tick.
type InstanceSource interface {
	InstanceIDs() []string
}

// Observer receives sampling outcomes.
type Observer interface {
	ObserveSnapshot(snapshot *models.MetricSnapshot)
	ProbeFailed(instanceID string)
}
