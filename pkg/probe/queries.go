package probe

const (
	activityQuery = `
SELECT
	count(*),
	count(*) FILTER (WHERE state = 'active'),
	count(*) FILTER (WHERE state = 'idle'),
	count(*) FILTER (WHERE state IN ('idle in transaction', 'idle in transaction (aborted)')),
	count(*) FILTER (WHERE cardinality(pg_blocking_pids(pid)) > 0),
	max(EXTRACT(EPOCH FROM now() - query_start)::float8) FILTER (WHERE state = 'active'),
	max(EXTRACT(EPOCH FROM now() - xact_start)::float8)
FROM pg_stat_activity
WHERE backend_type = 'client backend' AND pid <> pg_backend_pid()`

	maxConnectionsQuery = `SELECT setting::bigint FROM pg_settings WHERE name = 'max_connections'`

	databaseStatsQuery = `
SELECT
	COALESCE(sum(blks_hit), 0)::float8,
	COALESCE(sum(blks_read), 0)::float8,
	COALESCE(sum(deadlocks), 0)::float8
FROM pg_stat_database
WHERE datname IS NOT NULL`

	databaseSizeQuery = `
SELECT sum(pg_database_size(datname))::float8
FROM pg_database
WHERE NOT datistemplate AND has_database_privilege(datname, 'CONNECT')`

	replicationLagQuery = `
SELECT CASE
	WHEN pg_is_in_recovery() THEN EXTRACT(EPOCH FROM now() - pg_last_xact_replay_timestamp())::float8
	ELSE (SELECT max(EXTRACT(EPOCH FROM replay_lag)::float8) FROM pg_stat_replication)
END`

	// worst dead tuple share among tables big enough to matter
	tableBloatQuery = `
SELECT max(100.0 * n_dead_tup / (n_live_tup + n_dead_tup))::float8
FROM pg_stat_user_tables
WHERE n_live_tup + n_dead_tup >= 1000`

	xidWraparoundQuery = `
SELECT (max(age(datfrozenxid))::float8 / 2147483647.0) * 100.0
FROM pg_database`

	statStatementsInstalledQuery = `SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'pg_stat_statements')`

	queryMeanTimeQuery = `
SELECT (sum(total_exec_time) / NULLIF(sum(calls), 0))::float8
FROM pg_stat_statements`

	overviewQuery = `
SELECT
	current_setting('server_version'),
	pg_postmaster_start_time(),
	(SELECT count(*) FROM pg_database WHERE NOT datistemplate)`
)
