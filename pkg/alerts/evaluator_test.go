package alerts

import (
	"testing"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(v float64) *float64 { return &v }

func fullThresholds() *models.ThresholdConfig {
	return &models.ThresholdConfig{
		Enabled:                  true,
		MaxConnectionPercent:     ptr(80),
		MaxBlockedQueries:        ptr(5),
		MinCacheHitRatio:         ptr(0.95),
		MaxDeadlockRate:          ptr(1),
		MaxReplicationLagSeconds: ptr(30),
		MaxTableBloatPercent:     ptr(40),
		MaxXIDWraparoundPercent:  ptr(50),
		MaxQueryMeanTimeMs:       ptr(200),
	}
}

func healthySnapshot() *models.MetricSnapshot {
	return &models.MetricSnapshot{
		InstanceID:            "db1",
		TotalConnections:      10,
		MaxConnections:        100,
		BlockedQueries:        0,
		CacheHitRatio:         models.Value(0.99),
		DeadlocksPerHour:      models.Value(0),
		ReplicationLagSeconds: models.Value(1),
		TableBloatPercent:     models.Value(5),
		XIDWraparoundPercent:  models.Value(10),
		QueryMeanTimeMs:       models.Value(12),
	}
}

func typesOf(conds []models.TriggeredCondition) []models.AlertType {
	out := make([]models.AlertType, 0, len(conds))
	for _, c := range conds {
		out = append(out, c.Type)
	}

	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.MetricSnapshot)
		want   []models.AlertType
	}{
		{
			name:   "healthy",
			mutate: func(*models.MetricSnapshot) {},
			want:   []models.AlertType{},
		},
		{
			name:   "connection usage at threshold",
			mutate: func(s *models.MetricSnapshot) { s.TotalConnections = 80 },
			want:   []models.AlertType{models.AlertConnections},
		},
		{
			name: "connection usage without max",
			mutate: func(s *models.MetricSnapshot) {
				s.TotalConnections = 500
				s.MaxConnections = 0
			},
			want: []models.AlertType{},
		},
		{
			name:   "blocked queries at threshold",
			mutate: func(s *models.MetricSnapshot) { s.BlockedQueries = 5 },
			want:   []models.AlertType{models.AlertBlockedQueries},
		},
		{
			name:   "cache hit ratio below",
			mutate: func(s *models.MetricSnapshot) { s.CacheHitRatio = models.Value(0.90) },
			want:   []models.AlertType{models.AlertCacheHitRatio},
		},
		{
			name:   "cache hit ratio equal is fine",
			mutate: func(s *models.MetricSnapshot) { s.CacheHitRatio = models.Value(0.95) },
			want:   []models.AlertType{},
		},
		{
			name:   "deadlocks equal is fine",
			mutate: func(s *models.MetricSnapshot) { s.DeadlocksPerHour = models.Value(1) },
			want:   []models.AlertType{},
		},
		{
			name: "everything breached",
			mutate: func(s *models.MetricSnapshot) {
				s.TotalConnections = 95
				s.BlockedQueries = 9
				s.CacheHitRatio = models.Value(0.5)
				s.DeadlocksPerHour = models.Value(4)
				s.ReplicationLagSeconds = models.Value(120)
				s.TableBloatPercent = models.Value(60)
				s.XIDWraparoundPercent = models.Value(75)
				s.QueryMeanTimeMs = models.Value(900)
			},
			want: []models.AlertType{
				models.AlertConnections,
				models.AlertBlockedQueries,
				models.AlertCacheHitRatio,
				models.AlertDeadlocks,
				models.AlertReplicationLag,
				models.AlertTableBloat,
				models.AlertXIDWraparound,
				models.AlertQueryMeanTime,
			},
		},
		{
			name: "unavailable metrics are skipped",
			mutate: func(s *models.MetricSnapshot) {
				s.CacheHitRatio = models.Unavailable()
				s.DeadlocksPerHour = models.Unavailable()
				s.ReplicationLagSeconds = models.Unavailable()
				s.TableBloatPercent = models.Unavailable()
				s.XIDWraparoundPercent = models.Unavailable()
				s.QueryMeanTimeMs = models.Unavailable()
			},
			want: []models.AlertType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := healthySnapshot()
			tt.mutate(snap)

			got := Evaluate(snap, fullThresholds())
			assert.Equal(t, tt.want, typesOf(got))
		})
	}
}

func TestEvaluateConditionFields(t *testing.T) {
	snap := healthySnapshot()
	snap.ReplicationLagSeconds = models.Value(45)

	got := Evaluate(snap, fullThresholds())
	require.Len(t, got, 1)

	cond := got[0]
	assert.Equal(t, "db1", cond.InstanceID)
	assert.Equal(t, models.AlertReplicationLag, cond.Type)
	assert.InDelta(t, 45.0, cond.Value, 1e-9)
	assert.InDelta(t, 30.0, cond.Threshold, 1e-9)
	assert.Contains(t, cond.Title, "db1")
	assert.Contains(t, cond.Message, "45.0s")
}

func TestEvaluateMissingThresholdDisablesMetric(t *testing.T) {
	snap := healthySnapshot()
	snap.BlockedQueries = 50
	snap.TableBloatPercent = models.Value(90)

	cfg := fullThresholds()
	cfg.MaxBlockedQueries = nil
	cfg.MaxTableBloatPercent = ptr(-1)

	assert.Empty(t, Evaluate(snap, cfg))
}

func TestEvaluateDoesNotReadThresholdOfUnavailableMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := healthySnapshot()
	snap.DeadlocksPerHour = models.Unavailable()

	th := NewMockThresholds(ctrl)
	th.EXPECT().ConnectionPercent().Return(0.0, false).AnyTimes()
	th.EXPECT().BlockedQueries().Return(0.0, false).AnyTimes()
	th.EXPECT().CacheHitRatio().Return(0.0, false).AnyTimes()
	th.EXPECT().DeadlockRate().Times(0)
	th.EXPECT().ReplicationLagSeconds().Return(0.0, false).AnyTimes()
	th.EXPECT().TableBloatPercent().Return(0.0, false).AnyTimes()
	th.EXPECT().XIDWraparoundPercent().Return(0.0, false).AnyTimes()
	th.EXPECT().QueryMeanTimeMs().Return(0.0, false).AnyTimes()

	for _, cond := range Evaluate(snap, th) {
		assert.NotEqual(t, models.AlertDeadlocks, cond.Type)
	}
}

func TestEvaluateNilInputs(t *testing.T) {
	assert.Empty(t, Evaluate(nil, fullThresholds()))
	assert.Empty(t, Evaluate(healthySnapshot(), nil))

	var typedNil *models.ThresholdConfig

	snap := healthySnapshot()
	snap.TotalConnections = 99

	assert.NotPanics(t, func() {
		assert.Empty(t, Evaluate(snap, typedNil))
	})
	assert.Equal(t, time.Duration(models.DefaultCooldownSeconds)*time.Second, typedNil.Cooldown())
}

func TestEvaluateConnectionMessageNamesNumerator(t *testing.T) {
	snap := healthySnapshot()
	snap.TotalConnections = 90

	got := Evaluate(snap, fullThresholds())
	require.Len(t, got, 1)
	assert.Equal(t, models.AlertConnections, got[0].Type)
	assert.Equal(t, "Total connections at 90.0% of max_connections (threshold 80.0%)", got[0].Message)
}
