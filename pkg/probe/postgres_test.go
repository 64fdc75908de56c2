package probe

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()

		if r.values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		target.Set(reflect.ValueOf(r.values[i]))
	}

	return nil
}

type fakeQuerier map[string]fakeRow

func (f fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	row, ok := f[sql]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}

	return row
}

func fp(v float64) *float64 { return &v }

func healthyQuerier() fakeQuerier {
	return fakeQuerier{
		activityQuery:                {values: []any{int64(20), int64(4), int64(14), int64(2), int64(1), fp(3.5), nil}},
		maxConnectionsQuery:          {values: []any{int64(100)}},
		databaseStatsQuery:           {values: []any{990.0, 10.0, 7.0}},
		databaseSizeQuery:            {values: []any{fp(1 << 30)}},
		replicationLagQuery:          {values: []any{nil}},
		tableBloatQuery:              {values: []any{fp(12.5)}},
		xidWraparoundQuery:           {values: []any{fp(8)}},
		statStatementsInstalledQuery: {values: []any{false}},
	}
}

func TestCollect(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	p := NewPostgresProbe(nil)
	p.now = func() time.Time { return now }

	snap, err := p.collect(context.Background(), healthyQuerier(), "db1")
	require.NoError(t, err)

	assert.Equal(t, "db1", snap.InstanceID)
	assert.Equal(t, now, snap.SampledAt)
	assert.Equal(t, int64(20), snap.TotalConnections)
	assert.Equal(t, int64(100), snap.MaxConnections)
	assert.Equal(t, int64(1), snap.BlockedQueries)

	v, ok := snap.LongestQuerySeconds.Get()
	assert.True(t, ok)
	assert.InDelta(t, 3.5, v, 1e-9)

	v, ok = snap.LongestTransactionSeconds.Get()
	assert.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-9)

	v, ok = snap.CacheHitRatio.Get()
	assert.True(t, ok)
	assert.InDelta(t, 0.99, v, 1e-9)

	// no replicas, no pg_stat_statements, no previous deadlock sample
	assert.False(t, snap.ReplicationLagSeconds.Available())
	assert.False(t, snap.QueryMeanTimeMs.Available())
	assert.False(t, snap.DeadlocksPerHour.Available())

	assert.True(t, snap.TableBloatPercent.Available())
	assert.True(t, snap.XIDWraparoundPercent.Available())
}

func TestCollectDeadlockRate(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	p := NewPostgresProbe(nil)
	p.now = func() time.Time { return now }

	q := healthyQuerier()

	_, err := p.collect(context.Background(), q, "db1")
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	q[databaseStatsQuery] = fakeRow{values: []any{990.0, 10.0, 9.0}}

	snap, err := p.collect(context.Background(), q, "db1")
	require.NoError(t, err)

	v, ok := snap.DeadlocksPerHour.Get()
	require.True(t, ok)
	assert.InDelta(t, 4.0, v, 1e-9)

	// stats reset
	now = now.Add(30 * time.Minute)
	q[databaseStatsQuery] = fakeRow{values: []any{990.0, 10.0, 0.0}}

	snap, err = p.collect(context.Background(), q, "db1")
	require.NoError(t, err)

	v, ok = snap.DeadlocksPerHour.Get()
	require.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestCollectQueryMeanTime(t *testing.T) {
	q := healthyQuerier()
	q[statStatementsInstalledQuery] = fakeRow{values: []any{true}}
	q[queryMeanTimeQuery] = fakeRow{values: []any{fp(42)}}

	snap, err := NewPostgresProbe(nil).collect(context.Background(), q, "db1")
	require.NoError(t, err)

	v, ok := snap.QueryMeanTimeMs.Get()
	require.True(t, ok)
	assert.InDelta(t, 42.0, v, 1e-9)
}

func TestCollectFailsOnCoreQuery(t *testing.T) {
	q := healthyQuerier()
	q[activityQuery] = fakeRow{err: assert.AnError}

	_, err := NewPostgresProbe(nil).collect(context.Background(), q, "db1")
	require.ErrorIs(t, err, errQuery)
	require.ErrorIs(t, err, assert.AnError)
}

func TestCollectOptionalFailureIsUnavailable(t *testing.T) {
	q := healthyQuerier()
	q[tableBloatQuery] = fakeRow{err: assert.AnError}
	q[databaseStatsQuery] = fakeRow{values: []any{0.0, 0.0, 0.0}}

	snap, err := NewPostgresProbe(nil).collect(context.Background(), q, "db1")
	require.NoError(t, err)

	assert.False(t, snap.TableBloatPercent.Available())
	assert.False(t, snap.CacheHitRatio.Available())
}

func TestOverview(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	p := NewPostgresProbe(nil)
	p.now = func() time.Time { return now }

	q := fakeQuerier{
		overviewQuery: {values: []any{"16.2", now.Add(-3 * time.Hour), int64(4)}},
	}

	ov, err := p.overview(context.Background(), q, "db1")
	require.NoError(t, err)
	assert.Equal(t, "16.2", ov.ServerVersion)
	assert.Equal(t, 3*time.Hour, ov.Uptime)
	assert.Equal(t, 4, ov.DatabaseCount)
}

func TestUnknownInstance(t *testing.T) {
	p := NewPostgresProbe([]Instance{{ID: "b"}, {ID: "a"}})
	assert.Equal(t, []string{"a", "b"}, p.InstanceIDs())

	_, err := p.Snapshot(context.Background(), "zzz")
	require.ErrorIs(t, err, ErrUnknownInstance)
}

func TestClosedProbeDoesNotReconnect(t *testing.T) {
	p := NewPostgresProbe([]Instance{{ID: "a", DSN: "postgres://localhost:1/none"}})
	p.Close()

	_, err := p.Snapshot(context.Background(), "a")
	require.ErrorIs(t, err, errProbeClosed)

	_, err = p.Overview(context.Background(), "a")
	require.ErrorIs(t, err, errProbeClosed)

	assert.Empty(t, p.pools)
}

func TestPostgresProbeIntegration(t *testing.T) {
	dsn := os.Getenv("PGRADAR_TEST_DSN")
	if dsn == "" {
		t.Skip("PGRADAR_TEST_DSN not set")
	}

	p := NewPostgresProbe([]Instance{{ID: "it", DSN: dsn}})
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, p.Ping(ctx, "it"))

	snap, err := p.Snapshot(ctx, "it")
	require.NoError(t, err)
	assert.Positive(t, snap.MaxConnections)

	ov, err := p.Overview(ctx, "it")
	require.NoError(t, err)
	assert.NotEmpty(t, ov.ServerVersion)
}
