package api

//go:generate mockgen -destination=mock_api.go -package=api github.com/mfreeman451/pgradar/pkg/api SnapshotReader,StoreInspector,CooldownManager

import "github.com/mfreeman451/pgradar/pkg/models"

// SnapshotReader serves per-instance snapshot history.
type SnapshotReader interface {
	History(instanceID string, hours int) []models.MetricSnapshot
	Count(instanceID string) int
}

// StoreInspector exposes diagnostics of whichever store backs the service.
type StoreInspector interface {
	Summary() models.StoreSummary
	RetentionMinutes() int
	Persistent() bool
}

// CooldownManager lists and clears alert cooldowns.
type CooldownManager interface {
	Cooldowns() []models.CooldownEntry
	ClearCooldown(instanceID string, alertType models.AlertType)
	ClearAllCooldowns()
}
