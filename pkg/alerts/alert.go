package alerts

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfreeman451/pgradar/pkg/models"
)

type AlertLevel string

const (
	Info    AlertLevel = "info"
	Warning AlertLevel = "warning"
	Error   AlertLevel = "error"
)

// Alert is what every channel receives for one fired condition.
type Alert struct {
	ID         string           `json:"id"`
	Level      AlertLevel       `json:"level"`
	Type       models.AlertType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	InstanceID string           `json:"instance_id"`
	FiredAt    time.Time        `json:"fired_at"`
	Timestamp  string           `json:"timestamp"`
	Details    map[string]any   `json:"details,omitempty"`

	// Per-instance routing, never serialized.
	WebhookURL string `json:"-"`
	Email      string `json:"-"`
}

// NewAlert builds an alert for a triggered condition.
func NewAlert(cond *models.TriggeredCondition) *Alert {
	return &Alert{
		ID:         uuid.NewString(),
		Level:      levelFor(cond.Type),
		Type:       cond.Type,
		Title:      cond.Title,
		Message:    cond.Message,
		InstanceID: cond.InstanceID,
		Details: map[string]any{
			"value":     cond.Value,
			"threshold": cond.Threshold,
		},
	}
}

func levelFor(t models.AlertType) AlertLevel {
	switch t {
	case models.AlertXIDWraparound, models.AlertConnections, models.AlertDeadlocks:
		return Error
	case models.AlertBlockedQueries, models.AlertCacheHitRatio, models.AlertReplicationLag,
		models.AlertTableBloat, models.AlertQueryMeanTime:
		return Warning
	default:
		return Info
	}
}

func (a *Alert) stamp(now time.Time) {
	if a.FiredAt.IsZero() {
		a.FiredAt = now
	}

	if a.Timestamp == "" {
		a.Timestamp = a.FiredAt.UTC().Format(time.RFC3339)
	}
}
