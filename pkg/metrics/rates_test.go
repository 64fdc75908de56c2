package metrics

import (
	"testing"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestComputeRates(t *testing.T) {
	t0 := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		points []RatePoint
		want   []float64
	}{
		{
			name: "steady growth",
			points: []RatePoint{
				{Value: f(100), At: t0},
				{Value: f(200), At: t0.Add(60 * time.Second)},
				{Value: f(400), At: t0.Add(120 * time.Second)},
			},
			want: []float64{100.0 / 60, 200.0 / 60},
		},
		{
			name: "counter reset",
			points: []RatePoint{
				{Value: f(1000), At: t0},
				{Value: f(500), At: t0.Add(60 * time.Second)},
				{Value: f(600), At: t0.Add(120 * time.Second)},
			},
			want: []float64{0, 100.0 / 60},
		},
		{
			name: "missing value",
			points: []RatePoint{
				{Value: f(10), At: t0},
				{Value: nil, At: t0.Add(10 * time.Second)},
				{Value: f(30), At: t0.Add(20 * time.Second)},
			},
			want: []float64{0, 0},
		},
		{
			name: "non-positive elapsed",
			points: []RatePoint{
				{Value: f(10), At: t0},
				{Value: f(20), At: t0},
				{Value: f(30), At: t0.Add(-time.Second)},
			},
			want: []float64{0, 0},
		},
		{
			name:   "single point",
			points: []RatePoint{{Value: f(10), At: t0}},
			want:   []float64{},
		},
		{
			name:   "empty",
			points: nil,
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRates(tt.points)
			require.Len(t, got, len(tt.want))

			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestSnapshotRates(t *testing.T) {
	t0 := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	snapshots := []models.MetricSnapshot{
		{SampledAt: t0, TotalDatabaseSizeBytes: models.Value(1000)},
		{SampledAt: t0.Add(10 * time.Second), TotalDatabaseSizeBytes: models.Value(2000)},
		{SampledAt: t0.Add(20 * time.Second), TotalDatabaseSizeBytes: models.Unavailable()},
	}

	field, err := FieldByName("total_database_size_bytes")
	require.NoError(t, err)

	rates := SnapshotRates(snapshots, field)
	require.Len(t, rates, 2)
	assert.InDelta(t, 100.0, rates[0], 1e-9)
	assert.InDelta(t, 0.0, rates[1], 1e-9)

	_, err = FieldByName("nope")
	require.ErrorIs(t, err, ErrUnknownField)
}
