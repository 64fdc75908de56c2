package metrics

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

const defaultRetentionMinutes = 60

// StoreConfig configures the in-memory snapshot store.
type StoreConfig struct {
	RetentionMinutes int
	Persistent       bool
}

// instanceLog is the ordered snapshot log of one instance.
type instanceLog struct {
	mu        sync.RWMutex
	snapshots []models.MetricSnapshot
	retired   bool // removed from the map; writers must reload
}

// Store keeps a time-bounded snapshot log per instance.
type Store struct {
	instances       sync.Map // Map of instanceID -> *instanceLog
	retention       time.Duration
	retentionMin    int
	persistent      bool
	activeInstances int64
	now             func() time.Time
}

func NewStore(cfg StoreConfig) *Store {
	if cfg.RetentionMinutes <= 0 {
		cfg.RetentionMinutes = defaultRetentionMinutes
	}

	log.Printf("Creating snapshot store with retention %dm (persistent=%v)", cfg.RetentionMinutes, cfg.Persistent)

	return &Store{
		retention:    time.Duration(cfg.RetentionMinutes) * time.Minute,
		retentionMin: cfg.RetentionMinutes,
		persistent:   cfg.Persistent,
		now:          time.Now,
	}
}

// Add appends a copy of snapshot to the instance log. Snapshots without a
// timestamp are stamped with the current time.
func (s *Store) Add(instanceID string, snapshot *models.MetricSnapshot) {
	if instanceID == "" || snapshot == nil {
		return
	}

	snap := *snapshot
	snap.InstanceID = instanceID

	if snap.SampledAt.IsZero() {
		snap.SampledAt = s.now()
	}

	il := s.lockForWrite(instanceID)
	defer il.mu.Unlock()

	n := len(il.snapshots)
	if n == 0 || !snap.SampledAt.Before(il.snapshots[n-1].SampledAt) {
		il.snapshots = append(il.snapshots, snap)
		return
	}

	// out-of-order insert keeps the log ascending
	idx := sort.Search(n, func(i int) bool {
		return il.snapshots[i].SampledAt.After(snap.SampledAt)
	})

	il.snapshots = append(il.snapshots, models.MetricSnapshot{})
	copy(il.snapshots[idx+1:], il.snapshots[idx:])
	il.snapshots[idx] = snap
}

// History returns the snapshots sampled within the last hours, oldest first.
func (s *Store) History(instanceID string, hours int) []models.MetricSnapshot {
	if instanceID == "" || hours <= 0 {
		return []models.MetricSnapshot{}
	}

	il, ok := s.load(instanceID)
	if !ok {
		return []models.MetricSnapshot{}
	}

	now := s.now()
	since := now.Add(-models.HistoryWindow(hours))

	il.mu.RLock()
	defer il.mu.RUnlock()

	start := sort.Search(len(il.snapshots), func(i int) bool {
		return !il.snapshots[i].SampledAt.Before(since)
	})

	out := make([]models.MetricSnapshot, 0, len(il.snapshots)-start)

	for _, snap := range il.snapshots[start:] {
		if snap.SampledAt.After(now) {
			break
		}

		out = append(out, snap)
	}

	return out
}

// Count returns the number of stored snapshots for an instance.
func (s *Store) Count(instanceID string) int {
	il, ok := s.load(instanceID)
	if !ok {
		return 0
	}

	il.mu.RLock()
	defer il.mu.RUnlock()

	return len(il.snapshots)
}

// EvictOldEntries drops snapshots older than the retention window and
// returns how many were removed. It does nothing when a persistent backend
// owns retention.
func (s *Store) EvictOldEntries() int {
	if s.persistent {
		return 0
	}

	cutoff := s.now().Add(-s.retention)
	removed := 0

	s.instances.Range(func(key, value any) bool {
		il := value.(*instanceLog)

		il.mu.Lock()

		kept := il.snapshots[:0]

		for _, snap := range il.snapshots {
			if snap.SampledAt.IsZero() || !snap.SampledAt.Before(cutoff) {
				kept = append(kept, snap)
				continue
			}

			removed++
		}

		// zero the tail so evicted snapshots can be collected
		for i := len(kept); i < len(il.snapshots); i++ {
			il.snapshots[i] = models.MetricSnapshot{}
		}

		il.snapshots = kept

		if len(kept) == 0 {
			s.retire(key, il)
		}

		il.mu.Unlock()

		return true
	})

	if removed > 0 {
		log.Printf("Evicted %d snapshots older than %v", removed, s.retention)
	}

	return removed
}

// Clear removes every stored snapshot.
func (s *Store) Clear() {
	s.instances.Range(func(key, value any) bool {
		il := value.(*instanceLog)

		il.mu.Lock()
		s.retire(key, il)
		il.mu.Unlock()

		return true
	})
}

// ClearInstance removes the stored snapshots of one instance.
func (s *Store) ClearInstance(instanceID string) {
	il, ok := s.load(instanceID)
	if !ok {
		return
	}

	il.mu.Lock()
	s.retire(instanceID, il)
	il.mu.Unlock()
}

func (s *Store) RetentionMinutes() int {
	return s.retentionMin
}

func (s *Store) Persistent() bool {
	return s.persistent
}

func (s *Store) GetActiveInstances() int64 {
	return atomic.LoadInt64(&s.activeInstances)
}

// Summary reports per-instance counts and the retention window.
func (s *Store) Summary() models.StoreSummary {
	summary := models.StoreSummary{
		Instances:        make(map[string]int),
		RetentionMinutes: s.retentionMin,
		Persistent:       s.persistent,
	}

	s.instances.Range(func(key, value any) bool {
		il := value.(*instanceLog)

		il.mu.RLock()
		defer il.mu.RUnlock()

		if il.retired {
			return true
		}

		n := len(il.snapshots)
		summary.Instances[key.(string)] = n
		summary.TotalSnapshots += n

		if n == 0 {
			return true
		}

		first, last := il.snapshots[0].SampledAt, il.snapshots[n-1].SampledAt

		if summary.Oldest == nil || first.Before(*summary.Oldest) {
			summary.Oldest = &first
		}

		if summary.Newest == nil || last.After(*summary.Newest) {
			summary.Newest = &last
		}

		return true
	})

	return summary
}

// lockForWrite returns the live log of an instance with its write lock held,
// creating it when needed.
func (s *Store) lockForWrite(instanceID string) *instanceLog {
	for {
		value, loaded := s.instances.LoadOrStore(instanceID, &instanceLog{})
		if !loaded {
			atomic.AddInt64(&s.activeInstances, 1)
		}

		il := value.(*instanceLog)

		il.mu.Lock()

		if !il.retired {
			return il
		}

		il.mu.Unlock()
	}
}

// retire must be called with il.mu held.
func (s *Store) retire(key any, il *instanceLog) {
	if il.retired {
		return
	}

	il.retired = true
	il.snapshots = nil

	if s.instances.CompareAndDelete(key, il) {
		atomic.AddInt64(&s.activeInstances, -1)
	}
}

func (s *Store) load(instanceID string) (*instanceLog, bool) {
	value, ok := s.instances.Load(instanceID)
	if !ok {
		return nil, false
	}

	return value.(*instanceLog), true
}
