package db

import (
	"log"
	"time"

	"github.com/mfreeman451/pgradar/pkg/metrics"
	"github.com/mfreeman451/pgradar/pkg/models"
)

// SnapshotStore exposes a Service through the same Add/History/Count surface
// as the in-memory store. Database errors are logged and read as empty.
type SnapshotStore struct {
	db               Service
	retentionMinutes int
	now              func() time.Time
}

// NewSnapshotStore wraps db. retentionMinutes is the age past which Clean
// deletes rows.
func NewSnapshotStore(db Service, retentionMinutes int) *SnapshotStore {
	return &SnapshotStore{db: db, retentionMinutes: retentionMinutes, now: time.Now}
}

func (s *SnapshotStore) Add(instanceID string, snapshot *models.MetricSnapshot) {
	if instanceID == "" || snapshot == nil {
		return
	}

	snap := *snapshot
	snap.InstanceID = instanceID

	if err := s.db.AddSnapshot(&snap); err != nil {
		log.Printf("Error storing snapshot for %s: %v", instanceID, err)
	}
}

func (s *SnapshotStore) History(instanceID string, hours int) []models.MetricSnapshot {
	if instanceID == "" || hours <= 0 {
		return []models.MetricSnapshot{}
	}

	now := s.now()

	snapshots, err := s.db.GetSnapshots(instanceID, now.Add(-models.HistoryWindow(hours)), now)
	if err != nil {
		log.Printf("Error loading history for %s: %v", instanceID, err)
		return []models.MetricSnapshot{}
	}

	return snapshots
}

func (s *SnapshotStore) Count(instanceID string) int {
	n, err := s.db.CountSnapshots(instanceID)
	if err != nil {
		log.Printf("Error counting snapshots for %s: %v", instanceID, err)
		return 0
	}

	return n
}

// Summary reports what the database holds; errors read as an empty summary.
func (s *SnapshotStore) Summary() models.StoreSummary {
	summary, err := s.db.GetSummary()
	if err != nil {
		log.Printf("Error summarizing snapshots: %v", err)
	}

	summary.RetentionMinutes = s.retentionMinutes
	summary.Persistent = true

	if summary.Instances == nil {
		summary.Instances = map[string]int{}
	}

	return summary
}

func (s *SnapshotStore) RetentionMinutes() int {
	return s.retentionMinutes
}

func (*SnapshotStore) Persistent() bool {
	return true
}

// Clean enforces retention on the database.
func (s *SnapshotStore) Clean() (int64, error) {
	if s.retentionMinutes <= 0 {
		return 0, nil
	}

	return s.db.CleanOldData(time.Duration(s.retentionMinutes) * time.Minute)
}

var _ metrics.SnapshotStore = (*SnapshotStore)(nil)
