package alerts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// Dispatcher gates alerts through the cooldown tracker and delivers the ones
// that pass to every accepting channel.
type Dispatcher struct {
	tracker  *CooldownTracker
	channels []Channel
	recorder Recorder
	now      func() time.Time
}

func NewDispatcher(tracker *CooldownTracker, recorder Recorder, channels ...Channel) *Dispatcher {
	if tracker == nil {
		tracker = NewCooldownTracker()
	}

	return &Dispatcher{
		tracker:  tracker,
		channels: channels,
		recorder: recorder,
		now:      time.Now,
	}
}

// SendAlert delivers alert unless the same type fired for the same instance
// within cooldown. The cooldown is recorded as soon as the alert passes the
// gate, so a failed delivery is not retried until it expires. sent reports
// whether the gate let the alert through; err joins per-channel failures.
func (d *Dispatcher) SendAlert(ctx context.Context, alert *Alert, cooldown time.Duration) (bool, error) {
	now := d.now()
	key := CooldownKey{InstanceID: alert.InstanceID, Type: alert.Type}

	if !d.tracker.TryAcquire(key, now, cooldown) {
		log.Printf("Alert %s for %s is within cooldown period, skipping", alert.Type, alert.InstanceID)

		if d.recorder != nil {
			d.recorder.AlertSuppressed(alert.InstanceID, alert.Type)
		}

		return false, nil
	}

	alert.stamp(now)

	if d.recorder != nil {
		d.recorder.AlertDispatched(alert.InstanceID, alert.Type)
	}

	var errs []error

	for _, ch := range d.channels {
		if !ch.Accepts(alert) {
			continue
		}

		if err := ch.Send(ctx, alert); err != nil {
			log.Printf("Failed to send %s alert for %s via %s: %v", alert.Type, alert.InstanceID, ch.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))

			continue
		}

		log.Printf("Sent %s alert for %s via %s", alert.Type, alert.InstanceID, ch.Name())
	}

	if len(errs) > 0 {
		return true, fmt.Errorf("%w: %w", ErrDispatch, errors.Join(errs...))
	}

	return true, nil
}

func (d *Dispatcher) ClearCooldown(instanceID string, alertType models.AlertType) {
	d.tracker.Clear(instanceID, alertType)
}

func (d *Dispatcher) ClearAllCooldowns() {
	d.tracker.ClearAll()
}

func (d *Dispatcher) Cooldowns() []models.CooldownEntry {
	return d.tracker.Entries()
}
