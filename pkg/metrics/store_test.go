package metrics

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, retention int, persistent bool, now time.Time) *Store {
	t.Helper()

	s := NewStore(StoreConfig{RetentionMinutes: retention, Persistent: persistent})
	s.now = func() time.Time { return now }

	return s
}

func TestStoreAdd(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("ignores empty id and nil snapshot", func(t *testing.T) {
		s := newTestStore(t, 60, false, now)

		s.Add("", &models.MetricSnapshot{SampledAt: now})
		s.Add("db1", nil)

		assert.Equal(t, 0, s.Count("db1"))
		assert.Equal(t, int64(0), s.GetActiveInstances())
	})

	t.Run("stamps zero timestamps", func(t *testing.T) {
		s := newTestStore(t, 60, false, now)

		s.Add("db1", &models.MetricSnapshot{TotalConnections: 5})

		history := s.History("db1", 1)
		require.Len(t, history, 1)
		assert.Equal(t, now, history[0].SampledAt)
		assert.Equal(t, "db1", history[0].InstanceID)
	})

	t.Run("stores a copy", func(t *testing.T) {
		s := newTestStore(t, 60, false, now)

		snap := &models.MetricSnapshot{SampledAt: now, TotalConnections: 5}
		s.Add("db1", snap)
		snap.TotalConnections = 99

		history := s.History("db1", 1)
		require.Len(t, history, 1)
		assert.Equal(t, int64(5), history[0].TotalConnections)
	})

	t.Run("keeps ascending order for late arrivals", func(t *testing.T) {
		s := newTestStore(t, 60, false, now)

		for _, offset := range []int{10, 30, 20, 5} {
			s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-time.Duration(offset) * time.Minute)})
		}

		history := s.History("db1", 1)
		require.Len(t, history, 4)

		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].SampledAt.Before(history[i-1].SampledAt))
		}
	})
}

func TestStoreConcurrentAdd(t *testing.T) {
	const (
		writers   = 16
		perWriter = 250
	)

	s := NewStore(StoreConfig{RetentionMinutes: 60})

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < perWriter; i++ {
				s.Add("db1", &models.MetricSnapshot{})
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, writers*perWriter, s.Count("db1"))
	assert.Equal(t, int64(1), s.GetActiveInstances())
}

func TestStoreHistory(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, 24*60, false, now)

	for _, age := range []time.Duration{3 * time.Hour, 90 * time.Minute, 30 * time.Minute, time.Minute} {
		s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-age)})
	}

	// sampled after now, outside the window
	s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(time.Minute)})

	tests := []struct {
		name     string
		instance string
		hours    int
		want     int
	}{
		{name: "last hour", instance: "db1", hours: 1, want: 2},
		{name: "last two hours", instance: "db1", hours: 2, want: 3},
		{name: "whole day", instance: "db1", hours: 24, want: 4},
		{name: "longest window", instance: "db1", hours: models.MaxHistoryHours, want: 4},
		{name: "window past duration range", instance: "db1", hours: math.MaxInt, want: 4},
		{name: "zero window", instance: "db1", hours: 0, want: 0},
		{name: "negative window", instance: "db1", hours: -3, want: 0},
		{name: "unknown instance", instance: "db9", hours: 24, want: 0},
		{name: "empty instance", instance: "", hours: 24, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.History(tt.instance, tt.hours)
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestStoreEvictOldEntries(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("drops entries past retention", func(t *testing.T) {
		s := newTestStore(t, 60, false, now)

		s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-2 * time.Hour)})
		s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-61 * time.Minute)})
		s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-59 * time.Minute)})
		s.Add("db1", &models.MetricSnapshot{SampledAt: now})
		s.Add("db2", &models.MetricSnapshot{SampledAt: now.Add(-3 * time.Hour)})

		removed := s.EvictOldEntries()

		assert.Equal(t, 3, removed)
		assert.Equal(t, 2, s.Count("db1"))
		assert.Equal(t, 0, s.Count("db2"))
		assert.Equal(t, int64(1), s.GetActiveInstances())

		for _, snap := range s.History("db1", 24) {
			assert.False(t, snap.SampledAt.Before(now.Add(-60*time.Minute)))
		}
	})

	t.Run("persistent backend disables eviction", func(t *testing.T) {
		s := newTestStore(t, 60, true, now)

		s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-5 * time.Hour)})

		assert.Equal(t, 0, s.EvictOldEntries())
		assert.Equal(t, 1, s.Count("db1"))
	})

	t.Run("auto stamped entries age out", func(t *testing.T) {
		current := now
		s := NewStore(StoreConfig{RetentionMinutes: 60})
		s.now = func() time.Time { return current }

		s.Add("db1", &models.MetricSnapshot{})

		current = now.Add(2 * time.Hour)

		assert.Equal(t, 1, s.EvictOldEntries())
		assert.Equal(t, 0, s.Count("db1"))
	})
}

func TestStoreEvictDuringInserts(t *testing.T) {
	s := NewStore(StoreConfig{RetentionMinutes: 60})

	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			id := fmt.Sprintf("db%d", w%3)

			for i := 0; i < 200; i++ {
				s.Add(id, &models.MetricSnapshot{})
			}
		}(w)
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		for i := 0; i < 50; i++ {
			s.EvictOldEntries()
			_ = s.Summary()
		}
	}()

	wg.Wait()
	<-done

	assert.Equal(t, 8*200, s.Summary().TotalSnapshots)
}

func TestStoreClearAndSummary(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, 30, false, now)

	s.Add("db1", &models.MetricSnapshot{SampledAt: now.Add(-10 * time.Minute)})
	s.Add("db1", &models.MetricSnapshot{SampledAt: now})
	s.Add("db2", &models.MetricSnapshot{SampledAt: now.Add(-5 * time.Minute)})

	summary := s.Summary()
	assert.Equal(t, 3, summary.TotalSnapshots)
	assert.Equal(t, map[string]int{"db1": 2, "db2": 1}, summary.Instances)
	assert.Equal(t, 30, summary.RetentionMinutes)
	require.NotNil(t, summary.Oldest)
	require.NotNil(t, summary.Newest)
	assert.Equal(t, now.Add(-10*time.Minute), *summary.Oldest)
	assert.Equal(t, now, *summary.Newest)

	s.ClearInstance("db1")
	assert.Equal(t, 0, s.Count("db1"))
	assert.Equal(t, 1, s.Count("db2"))

	s.Clear()
	assert.Equal(t, 0, s.Summary().TotalSnapshots)
	assert.Equal(t, int64(0), s.GetActiveInstances())
	assert.Equal(t, 30, s.RetentionMinutes())
}

func TestNewStoreDefaultsRetention(t *testing.T) {
	s := NewStore(StoreConfig{})
	assert.Equal(t, defaultRetentionMinutes, s.RetentionMinutes())
}
