// Package probe collects health snapshots from PostgreSQL instances.
package probe

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreeman451/pgradar/pkg/models"
)

const defaultMaxConns = 2

// Instance is one monitored PostgreSQL server.
type Instance struct {
	ID  string
	DSN string
}

// querier is the subset of *pgxpool.Pool the collectors use.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type deadlockSample struct {
	total float64
	at    time.Time
}

// PostgresProbe keeps a small pool per instance and turns catalog views into
// snapshots. Metrics that do not apply to an instance are reported as
// unavailable rather than failing the probe.
type PostgresProbe struct {
	mu        sync.Mutex
	instances map[string]Instance
	pools     map[string]*pgxpool.Pool
	deadlocks map[string]deadlockSample
	closed    bool
	maxConns  int32
	now       func() time.Time
}

func NewPostgresProbe(instances []Instance) *PostgresProbe {
	p := &PostgresProbe{
		instances: make(map[string]Instance, len(instances)),
		pools:     make(map[string]*pgxpool.Pool),
		deadlocks: make(map[string]deadlockSample),
		maxConns:  defaultMaxConns,
		now:       time.Now,
	}

	for _, inst := range instances {
		p.instances[inst.ID] = inst
	}

	return p
}

// InstanceIDs lists the configured instances in a stable order.
func (p *PostgresProbe) InstanceIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.instances))
	for id := range p.instances {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

func (p *PostgresProbe) pool(ctx context.Context, instanceID string) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errProbeClosed
	}

	if pool, ok := p.pools[instanceID]; ok {
		return pool, nil
	}

	inst, ok := p.instances[instanceID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, instanceID)
	}

	cfg, err := pgxpool.ParseConfig(inst.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConnect, err)
	}

	cfg.MaxConns = p.maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConnect, err)
	}

	log.Printf("Opened connection pool for instance %s", instanceID)

	p.pools[instanceID] = pool

	return pool, nil
}

// Snapshot samples one instance.
func (p *PostgresProbe) Snapshot(ctx context.Context, instanceID string) (*models.MetricSnapshot, error) {
	pool, err := p.pool(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	return p.collect(ctx, pool, instanceID)
}

func (p *PostgresProbe) collect(ctx context.Context, q querier, instanceID string) (*models.MetricSnapshot, error) {
	snap := &models.MetricSnapshot{
		InstanceID: instanceID,
		SampledAt:  p.now(),
	}

	var longestQuery, longestTx *float64

	if err := q.QueryRow(ctx, activityQuery).Scan(
		&snap.TotalConnections,
		&snap.ActiveQueries,
		&snap.IdleConnections,
		&snap.IdleInTransaction,
		&snap.BlockedQueries,
		&longestQuery,
		&longestTx,
	); err != nil {
		return nil, fmt.Errorf("%w: activity: %w", errQuery, err)
	}

	snap.LongestQuerySeconds = gaugeOrZero(longestQuery)
	snap.LongestTransactionSeconds = gaugeOrZero(longestTx)

	if err := q.QueryRow(ctx, maxConnectionsQuery).Scan(&snap.MaxConnections); err != nil {
		return nil, fmt.Errorf("%w: max_connections: %w", errQuery, err)
	}

	var hits, reads, deadlocks float64
	if err := q.QueryRow(ctx, databaseStatsQuery).Scan(&hits, &reads, &deadlocks); err != nil {
		return nil, fmt.Errorf("%w: database stats: %w", errQuery, err)
	}

	snap.CacheHitRatio = cacheHitRatio(hits, reads)
	snap.DeadlocksPerHour = p.deadlockRate(instanceID, deadlocks, snap.SampledAt)

	snap.TotalDatabaseSizeBytes = optional(ctx, q, instanceID, "database size", databaseSizeQuery)
	snap.ReplicationLagSeconds = optional(ctx, q, instanceID, "replication lag", replicationLagQuery)
	snap.TableBloatPercent = optional(ctx, q, instanceID, "table bloat", tableBloatQuery)
	snap.XIDWraparoundPercent = optional(ctx, q, instanceID, "xid wraparound", xidWraparoundQuery)
	snap.QueryMeanTimeMs = queryMeanTime(ctx, q, instanceID)

	return snap, nil
}

// optional runs a single-value query whose NULL result or failure means the
// metric does not apply.
func optional(ctx context.Context, q querier, instanceID, name, sql string) models.Gauge {
	var v *float64
	if err := q.QueryRow(ctx, sql).Scan(&v); err != nil {
		log.Printf("Instance %s: %s unavailable: %v", instanceID, name, err)
		return models.Unavailable()
	}

	return models.GaugeFromPtr(v)
}

func queryMeanTime(ctx context.Context, q querier, instanceID string) models.Gauge {
	var installed bool
	if err := q.QueryRow(ctx, statStatementsInstalledQuery).Scan(&installed); err != nil || !installed {
		return models.Unavailable()
	}

	return optional(ctx, q, instanceID, "query mean time", queryMeanTimeQuery)
}

func gaugeOrZero(v *float64) models.Gauge {
	if v == nil {
		return models.Value(0)
	}

	return models.Value(*v)
}

func cacheHitRatio(hits, reads float64) models.Gauge {
	total := hits + reads
	if total <= 0 {
		return models.Unavailable()
	}

	return models.Value(hits / total)
}

// deadlockRate converts the cumulative deadlock counter into a per-hour rate
// against the previous sample. The first sample has nothing to compare to.
func (p *PostgresProbe) deadlockRate(instanceID string, total float64, at time.Time) models.Gauge {
	p.mu.Lock()
	prev, ok := p.deadlocks[instanceID]
	p.deadlocks[instanceID] = deadlockSample{total: total, at: at}
	p.mu.Unlock()

	if !ok {
		return models.Unavailable()
	}

	hours := at.Sub(prev.at).Hours()
	if hours <= 0 {
		return models.Unavailable()
	}

	delta := total - prev.total
	if delta < 0 {
		delta = 0
	}

	return models.Value(delta / hours)
}

// Overview returns server details used to enrich alerts.
func (p *PostgresProbe) Overview(ctx context.Context, instanceID string) (*models.InstanceOverview, error) {
	pool, err := p.pool(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	return p.overview(ctx, pool, instanceID)
}

func (p *PostgresProbe) overview(ctx context.Context, q querier, instanceID string) (*models.InstanceOverview, error) {
	ov := &models.InstanceOverview{InstanceID: instanceID}

	var dbCount int64
	if err := q.QueryRow(ctx, overviewQuery).Scan(&ov.ServerVersion, &ov.StartedAt, &dbCount); err != nil {
		return nil, fmt.Errorf("%w: overview: %w", errQuery, err)
	}

	ov.DatabaseCount = int(dbCount)
	ov.Uptime = p.now().Sub(ov.StartedAt).Truncate(time.Second)

	return ov, nil
}

// Ping checks connectivity to an instance.
func (p *PostgresProbe) Ping(ctx context.Context, instanceID string) error {
	pool, err := p.pool(ctx, instanceID)
	if err != nil {
		return err
	}

	return pool.Ping(ctx)
}

// Close releases every pool. Later probes fail instead of reconnecting.
func (p *PostgresProbe) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true

	for id, pool := range p.pools {
		pool.Close()
		delete(p.pools, id)
	}
}
