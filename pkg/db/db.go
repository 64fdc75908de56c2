// Package db pkg/db/db.go provides the SQLite snapshot backend for pgradar
package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	CREATE TABLE IF NOT EXISTS metric_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		instance_id TEXT NOT NULL,
		sampled_at TIMESTAMP NOT NULL,
		total_connections INTEGER NOT NULL DEFAULT 0,
		max_connections INTEGER NOT NULL DEFAULT 0,
		active_queries INTEGER NOT NULL DEFAULT 0,
		idle_connections INTEGER NOT NULL DEFAULT 0,
		idle_in_transaction INTEGER NOT NULL DEFAULT 0,
		blocked_queries INTEGER NOT NULL DEFAULT 0,
		longest_query_seconds REAL,
		longest_transaction_seconds REAL,
		cache_hit_ratio REAL,
		total_database_size_bytes REAL,
		deadlocks_per_hour REAL,
		replication_lag_seconds REAL,
		table_bloat_percent REAL,
		xid_wraparound_percent REAL,
		query_mean_time_ms REAL
	);

	CREATE INDEX IF NOT EXISTS idx_metric_snapshots_instance_time
		ON metric_snapshots(instance_id, sampled_at);
	CREATE INDEX IF NOT EXISTS idx_metric_snapshots_time
		ON metric_snapshots(sampled_at);

	PRAGMA journal_mode=WAL;
	`

	snapshotColumns = `instance_id, sampled_at,
		total_connections, max_connections, active_queries, idle_connections, idle_in_transaction, blocked_queries,
		longest_query_seconds, longest_transaction_seconds, cache_hit_ratio, total_database_size_bytes,
		deadlocks_per_hour, replication_lag_seconds, table_bloat_percent, xid_wraparound_percent, query_mean_time_ms`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	return setup(sqlDB, dbPath)
}

// setup prepares an opened handle, closing it when preparation fails.
func setup(sqlDB *sql.DB, dbPath string) (*DB, error) {
	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		closeOnError(sqlDB)
		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		closeOnError(sqlDB)
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	log.Printf("Opened snapshot database at %s", dbPath)

	return db, nil
}

func closeOnError(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

// AddSnapshot stores one snapshot. Unavailable gauges are stored as NULL.
func (db *DB) AddSnapshot(s *models.MetricSnapshot) error {
	if s == nil || s.InstanceID == "" {
		return ErrInvalidSnapshot
	}

	sampledAt := s.SampledAt
	if sampledAt.IsZero() {
		sampledAt = time.Now()
	}

	_, err := db.Exec(`INSERT INTO metric_snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.InstanceID,
		sampledAt.UTC(),
		s.TotalConnections,
		s.MaxConnections,
		s.ActiveQueries,
		s.IdleConnections,
		s.IdleInTransaction,
		s.BlockedQueries,
		s.LongestQuerySeconds.Ptr(),
		s.LongestTransactionSeconds.Ptr(),
		s.CacheHitRatio.Ptr(),
		s.TotalDatabaseSizeBytes.Ptr(),
		s.DeadlocksPerHour.Ptr(),
		s.ReplicationLagSeconds.Ptr(),
		s.TableBloatPercent.Ptr(),
		s.XIDWraparoundPercent.Ptr(),
		s.QueryMeanTimeMs.Ptr(),
	)
	if err != nil {
		return fmt.Errorf("%w snapshot: %w", ErrFailedToInsert, err)
	}

	return nil
}

// GetSnapshots returns the snapshots of an instance sampled in [since, until],
// oldest first.
func (db *DB) GetSnapshots(instanceID string, since, until time.Time) ([]models.MetricSnapshot, error) {
	const querySQL = `SELECT ` + snapshotColumns + `
		FROM metric_snapshots
		WHERE instance_id = ? AND sampled_at >= ? AND sampled_at <= ?
		ORDER BY sampled_at ASC, id ASC`

	rows, err := db.Query(querySQL, instanceID, since.UTC(), until.UTC()) //nolint:rowserrcheck // rows.Err is checked below
	if err != nil {
		return nil, fmt.Errorf("%w snapshots: %w", ErrFailedToQuery, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}(rows)

	snapshots := []models.MetricSnapshot{}

	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w snapshots: %w", ErrFailedToQuery, err)
	}

	return snapshots, nil
}

func scanSnapshot(rows *sql.Rows) (models.MetricSnapshot, error) {
	var (
		s      models.MetricSnapshot
		gauges [9]sql.NullFloat64
	)

	if err := rows.Scan(
		&s.InstanceID,
		&s.SampledAt,
		&s.TotalConnections,
		&s.MaxConnections,
		&s.ActiveQueries,
		&s.IdleConnections,
		&s.IdleInTransaction,
		&s.BlockedQueries,
		&gauges[0], &gauges[1], &gauges[2], &gauges[3], &gauges[4],
		&gauges[5], &gauges[6], &gauges[7], &gauges[8],
	); err != nil {
		return s, fmt.Errorf("%w snapshot row: %w", ErrFailedToScan, err)
	}

	targets := []*models.Gauge{
		&s.LongestQuerySeconds,
		&s.LongestTransactionSeconds,
		&s.CacheHitRatio,
		&s.TotalDatabaseSizeBytes,
		&s.DeadlocksPerHour,
		&s.ReplicationLagSeconds,
		&s.TableBloatPercent,
		&s.XIDWraparoundPercent,
		&s.QueryMeanTimeMs,
	}

	for i, g := range gauges {
		if g.Valid {
			*targets[i] = models.Value(g.Float64)
		}
	}

	return s, nil
}

func (db *DB) CountSnapshots(instanceID string) (int, error) {
	var count int

	err := db.QueryRow(`SELECT COUNT(*) FROM metric_snapshots WHERE instance_id = ?`, instanceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w snapshot count: %w", ErrFailedToQuery, err)
	}

	return count, nil
}

// GetSummary reports per-instance counts and the stored time range.
func (db *DB) GetSummary() (models.StoreSummary, error) {
	summary := models.StoreSummary{
		Instances:  make(map[string]int),
		Persistent: true,
	}

	rows, err := db.Query(`SELECT instance_id, COUNT(*) FROM metric_snapshots GROUP BY instance_id`) //nolint:rowserrcheck // rows.Err is checked below
	if err != nil {
		return summary, fmt.Errorf("%w summary: %w", ErrFailedToQuery, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}(rows)

	for rows.Next() {
		var (
			id string
			n  int
		)

		if err := rows.Scan(&id, &n); err != nil {
			return summary, fmt.Errorf("%w summary row: %w", ErrFailedToScan, err)
		}

		summary.Instances[id] = n
		summary.TotalSnapshots += n
	}

	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("%w summary: %w", ErrFailedToQuery, err)
	}

	if summary.TotalSnapshots == 0 {
		return summary, nil
	}

	var oldest, newest time.Time

	// ORDER BY LIMIT keeps the TIMESTAMP column type, which MIN/MAX would drop
	if err := db.QueryRow(`SELECT sampled_at FROM metric_snapshots ORDER BY sampled_at ASC LIMIT 1`).Scan(&oldest); err != nil {
		return summary, fmt.Errorf("%w summary range: %w", ErrFailedToQuery, err)
	}

	if err := db.QueryRow(`SELECT sampled_at FROM metric_snapshots ORDER BY sampled_at DESC LIMIT 1`).Scan(&newest); err != nil {
		return summary, fmt.Errorf("%w summary range: %w", ErrFailedToQuery, err)
	}

	summary.Oldest, summary.Newest = &oldest, &newest

	return summary, nil
}

// CleanOldData removes snapshots older than the retention period and returns
// how many rows were deleted.
func (db *DB) CleanOldData(retentionPeriod time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retentionPeriod).UTC()

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	result, err := tx.Exec("DELETE FROM metric_snapshots WHERE sampled_at < ?", cutoff)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("failed to rollback: %v", rbErr)
		}

		return 0, fmt.Errorf("%w snapshots: %w", ErrFailedToClean, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w snapshots: %w", ErrFailedToClean, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w snapshots: %w", ErrFailedToClean, err)
	}

	if removed > 0 {
		log.Printf("Cleaned %d snapshots older than %v", removed, retentionPeriod)
	}

	return removed, nil
}
