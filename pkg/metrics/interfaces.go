package metrics

import (
	"github.com/mfreeman451/pgradar/pkg/models"
)

// SnapshotStore is the read/write surface shared by the in-memory store and
// the persistent repository.
type SnapshotStore interface {
	Add(instanceID string, snapshot *models.MetricSnapshot)
	History(instanceID string, hours int) []models.MetricSnapshot
	Count(instanceID string) int
}

var _ SnapshotStore = (*Store)(nil)
