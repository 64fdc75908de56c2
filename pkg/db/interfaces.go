// Package db pkg/db/interfaces.go
package db

import (
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// Service represents all database operations.
type Service interface {
	Close() error

	// Snapshot operations.

	AddSnapshot(snapshot *models.MetricSnapshot) error
	GetSnapshots(instanceID string, since, until time.Time) ([]models.MetricSnapshot, error)
	CountSnapshots(instanceID string) (int, error)
	GetSummary() (models.StoreSummary, error)

	// Maintenance operations.

	CleanOldData(retentionPeriod time.Duration) (int64, error)
}
