package alerts

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// Manager runs the evaluator for one instance snapshot and hands every
// triggered condition to the dispatcher.
type Manager struct {
	dispatcher *Dispatcher
	provider   ThresholdProvider
	overview   OverviewProvider
}

// NewManager creates a Manager. overview may be nil.
func NewManager(dispatcher *Dispatcher, provider ThresholdProvider, overview OverviewProvider) *Manager {
	return &Manager{
		dispatcher: dispatcher,
		provider:   provider,
		overview:   overview,
	}
}

func (m *Manager) AlertingEnabled(instanceID string) bool {
	return m.provider.AlertingEnabled(instanceID)
}

// CheckAndAlert evaluates snapshot and dispatches what it finds. Nothing is
// read when alerting is disabled for the instance. A failed overview lookup
// is returned, but the alerts still go out without it.
func (m *Manager) CheckAndAlert(ctx context.Context, instanceID string, snapshot *models.MetricSnapshot) error {
	if !m.provider.AlertingEnabled(instanceID) {
		return nil
	}

	cfg, ok := m.provider.Thresholds(instanceID)
	if !ok || cfg == nil {
		log.Printf("No thresholds configured for %s, skipping alert check", instanceID)
		return nil
	}

	if snapshot.InstanceID == "" {
		snap := *snapshot
		snap.InstanceID = instanceID
		snapshot = &snap
	}

	triggered := Evaluate(snapshot, cfg)
	if len(triggered) == 0 {
		return nil
	}

	var errs []error

	overview, err := m.lookupOverview(ctx, instanceID)
	if err != nil {
		log.Printf("Failed to load overview for %s: %v", instanceID, err)
		errs = append(errs, err)
	}

	for i := range triggered {
		alert := NewAlert(&triggered[i])
		alert.WebhookURL = cfg.WebhookURL
		alert.Email = cfg.Email

		if overview != nil {
			alert.Details["server_version"] = overview.ServerVersion
			alert.Details["uptime"] = overview.Uptime.String()
			alert.Details["database_count"] = overview.DatabaseCount
		}

		if _, err := m.dispatcher.SendAlert(ctx, alert, cfg.Cooldown()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m *Manager) lookupOverview(ctx context.Context, instanceID string) (*models.InstanceOverview, error) {
	if m.overview == nil {
		return nil, nil
	}

	overview, err := m.overview.Overview(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverview, err)
	}

	return overview, nil
}

func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}
