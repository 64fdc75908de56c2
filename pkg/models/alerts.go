package models

import "time"

// AlertType identifies the metric rule that fired.
type AlertType string

const (
	AlertConnections    AlertType = "CONNECTIONS"
	AlertBlockedQueries AlertType = "BLOCKED_QUERIES"
	AlertCacheHitRatio  AlertType = "CACHE_HIT_RATIO"
	AlertDeadlocks      AlertType = "DEADLOCKS"
	AlertReplicationLag AlertType = "REPLICATION_LAG"
	AlertTableBloat     AlertType = "TABLE_BLOAT"
	AlertXIDWraparound  AlertType = "XID_WRAPAROUND"
	AlertQueryMeanTime  AlertType = "QUERY_MEAN_TIME"
)

// DefaultCooldownSeconds applies when an instance does not set its own cooldown.
const DefaultCooldownSeconds = 300

// ThresholdConfig holds the per-instance alert limits. A nil limit disables
// the corresponding metric.
type ThresholdConfig struct {
	Enabled                  bool     `json:"enabled" yaml:"enabled"`
	MaxConnectionPercent     *float64 `json:"connection_percent,omitempty" yaml:"connection_percent,omitempty"`
	MaxBlockedQueries        *float64 `json:"blocked_queries,omitempty" yaml:"blocked_queries,omitempty"`
	MinCacheHitRatio         *float64 `json:"cache_hit_ratio,omitempty" yaml:"cache_hit_ratio,omitempty"`
	MaxDeadlockRate          *float64 `json:"deadlock_rate,omitempty" yaml:"deadlock_rate,omitempty"`
	MaxReplicationLagSeconds *float64 `json:"replication_lag_seconds,omitempty" yaml:"replication_lag_seconds,omitempty"`
	MaxTableBloatPercent     *float64 `json:"table_bloat_percent,omitempty" yaml:"table_bloat_percent,omitempty"`
	MaxXIDWraparoundPercent  *float64 `json:"xid_wraparound_percent,omitempty" yaml:"xid_wraparound_percent,omitempty"`
	MaxQueryMeanTimeMs       *float64 `json:"query_mean_time_ms,omitempty" yaml:"query_mean_time_ms,omitempty"`
	CooldownSeconds          int      `json:"cooldown_seconds,omitempty" yaml:"cooldown_seconds,omitempty"`
	WebhookURL               string   `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty"`
	Email                    string   `json:"email,omitempty" yaml:"email,omitempty"`
}

// limit reads one configured limit. A nil config, a nil limit or a negative
// limit all disable the metric.
func (t *ThresholdConfig) limit(field func(*ThresholdConfig) *float64) (float64, bool) {
	if t == nil {
		return 0, false
	}

	v := field(t)
	if v == nil || *v < 0 {
		return 0, false
	}

	return *v, true
}

func (t *ThresholdConfig) ConnectionPercent() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxConnectionPercent })
}

func (t *ThresholdConfig) BlockedQueries() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxBlockedQueries })
}

func (t *ThresholdConfig) CacheHitRatio() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MinCacheHitRatio })
}

func (t *ThresholdConfig) DeadlockRate() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxDeadlockRate })
}

func (t *ThresholdConfig) ReplicationLagSeconds() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxReplicationLagSeconds })
}

func (t *ThresholdConfig) TableBloatPercent() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxTableBloatPercent })
}

func (t *ThresholdConfig) XIDWraparoundPercent() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxXIDWraparoundPercent })
}

func (t *ThresholdConfig) QueryMeanTimeMs() (float64, bool) {
	return t.limit(func(c *ThresholdConfig) *float64 { return c.MaxQueryMeanTimeMs })
}

// Cooldown returns the suppression window, falling back to DefaultCooldownSeconds.
func (t *ThresholdConfig) Cooldown() time.Duration {
	if t == nil || t.CooldownSeconds <= 0 {
		return DefaultCooldownSeconds * time.Second
	}

	return time.Duration(t.CooldownSeconds) * time.Second
}

// TriggeredCondition is a single threshold breach found in a snapshot.
type TriggeredCondition struct {
	InstanceID string    `json:"instance_id"`
	Type       AlertType `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Value      float64   `json:"value"`
	Threshold  float64   `json:"threshold"`
}

// CooldownEntry is the last time an alert type fired for an instance.
type CooldownEntry struct {
	InstanceID  string    `json:"instance_id"`
	Type        AlertType `json:"type"`
	LastFiredAt time.Time `json:"last_fired_at"`
}
