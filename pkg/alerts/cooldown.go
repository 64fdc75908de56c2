package alerts

import (
	"sort"
	"sync"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

// CooldownKey scopes suppression to one alert type on one instance.
type CooldownKey struct {
	InstanceID string
	Type       models.AlertType
}

type cooldownSlot struct {
	mu        sync.Mutex
	lastFired time.Time
	set       bool
}

// CooldownTracker records when each (instance, alert type) last fired.
// Every key has its own lock so unrelated keys never contend.
type CooldownTracker struct {
	slots sync.Map // Map of CooldownKey -> *cooldownSlot
}

func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{}
}

// TryAcquire reports whether an alert for key may fire at now and, if so,
// records now as its last firing. It returns false while the previous firing
// is younger than cooldown.
func (c *CooldownTracker) TryAcquire(key CooldownKey, now time.Time, cooldown time.Duration) bool {
	value, _ := c.slots.LoadOrStore(key, &cooldownSlot{})
	slot := value.(*cooldownSlot)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.set && now.Sub(slot.lastFired) < cooldown {
		return false
	}

	slot.lastFired = now
	slot.set = true

	return true
}

// Clear forgets the last firing of one key.
func (c *CooldownTracker) Clear(instanceID string, alertType models.AlertType) {
	c.slots.Delete(CooldownKey{InstanceID: instanceID, Type: alertType})
}

func (c *CooldownTracker) ClearAll() {
	c.slots.Clear()
}

// Entries lists the recorded firings ordered by instance then type.
func (c *CooldownTracker) Entries() []models.CooldownEntry {
	entries := []models.CooldownEntry{}

	c.slots.Range(func(key, value any) bool {
		k := key.(CooldownKey)
		slot := value.(*cooldownSlot)

		slot.mu.Lock()
		last, set := slot.lastFired, slot.set
		slot.mu.Unlock()

		if set {
			entries = append(entries, models.CooldownEntry{
				InstanceID:  k.InstanceID,
				Type:        k.Type,
				LastFiredAt: last,
			})
		}

		return true
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].InstanceID != entries[j].InstanceID {
			return entries[i].InstanceID < entries[j].InstanceID
		}

		return entries[i].Type < entries[j].Type
	})

	return entries
}
