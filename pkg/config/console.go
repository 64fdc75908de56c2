package config

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mfreeman451/pgradar/pkg/alerts"
	"github.com/mfreeman451/pgradar/pkg/models"
)

const (
	defaultListenAddr       = ":8090"
	defaultRetentionMinutes = 60
	defaultSampleInterval   = 30 * time.Second
	defaultEvictionInterval = time.Minute
	defaultProbeTimeout     = 10 * time.Second
	defaultConcurrency      = 4
	defaultShutdownTimeout  = 10 * time.Second
	defaultDBPath           = "pgradar.db"
)

// InstanceConfig describes one monitored PostgreSQL instance.
type InstanceConfig struct {
	ID string `json:"id" yaml:"id"`

	// DSN may be left empty in favor of DSNEnv to keep secrets out of the file.
	DSN        string                  `json:"dsn,omitempty" yaml:"dsn,omitempty"`
	DSNEnv     string                  `json:"dsn_env,omitempty" yaml:"dsn_env,omitempty"`
	Thresholds *models.ThresholdConfig `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
}

type DiscordConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	URL           string `json:"url" yaml:"url"`
	RatePerMinute int    `json:"rate_per_minute,omitempty" yaml:"rate_per_minute,omitempty"`
}

// ConsoleConfig is the pgradar service configuration.
type ConsoleConfig struct {
	ListenAddr  string   `json:"listen_addr" yaml:"listen_addr"`
	CORSOrigins []string `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty"`

	// Persistent hands sampling and retention to the SQLite backend at DBPath.
	Persistent bool   `json:"persistent" yaml:"persistent"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`

	RetentionMinutes       int      `json:"retention_minutes" yaml:"retention_minutes"`
	SampleInterval         Duration `json:"sample_interval" yaml:"sample_interval"`
	EvictionInterval       Duration `json:"eviction_interval" yaml:"eviction_interval"`
	ProbeTimeout           Duration `json:"probe_timeout" yaml:"probe_timeout"`
	Concurrency            int      `json:"concurrency" yaml:"concurrency"`
	DefaultCooldownSeconds int      `json:"default_cooldown_seconds" yaml:"default_cooldown_seconds"`
	ShutdownTimeout        Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	Instances []InstanceConfig       `json:"instances" yaml:"instances"`
	Webhooks  []alerts.WebhookConfig `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
	Discord   *DiscordConfig         `json:"discord,omitempty" yaml:"discord,omitempty"`
	Email     *alerts.EmailConfig    `json:"email,omitempty" yaml:"email,omitempty"`
	NATS      *alerts.NATSConfig     `json:"nats,omitempty" yaml:"nats,omitempty"`
}

func (c *ConsoleConfig) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.RetentionMinutes == 0 {
		c.RetentionMinutes = defaultRetentionMinutes
	}

	if c.SampleInterval == 0 {
		c.SampleInterval = Duration(defaultSampleInterval)
	}

	if c.EvictionInterval == 0 {
		c.EvictionInterval = Duration(defaultEvictionInterval)
	}

	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = Duration(defaultProbeTimeout)
	}

	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}

	if c.DefaultCooldownSeconds == 0 {
		c.DefaultCooldownSeconds = models.DefaultCooldownSeconds
	}

	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = Duration(defaultShutdownTimeout)
	}

	if c.Persistent && c.DBPath == "" {
		c.DBPath = defaultDBPath
	}

	for i := range c.Instances {
		th := c.Instances[i].Thresholds
		if th != nil && th.CooldownSeconds == 0 {
			th.CooldownSeconds = c.DefaultCooldownSeconds
		}
	}
}

func (c *ConsoleConfig) Validate() error {
	if c.RetentionMinutes < 0 {
		return fmt.Errorf("%w: retention_minutes must not be negative", errInvalidConfig)
	}

	if c.SampleInterval < 0 || c.EvictionInterval < 0 || c.ProbeTimeout < 0 {
		return fmt.Errorf("%w: intervals must not be negative", errInvalidConfig)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", errInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Instances))

	for i := range c.Instances {
		inst := &c.Instances[i]

		if inst.ID == "" {
			return fmt.Errorf("%w: instance %d has no id", errInvalidConfig, i)
		}

		if _, dup := seen[inst.ID]; dup {
			return fmt.Errorf("%w: duplicate instance id %q", errInvalidConfig, inst.ID)
		}

		seen[inst.ID] = struct{}{}

		if inst.DSN == "" && inst.DSNEnv == "" {
			return fmt.Errorf("%w: instance %q needs dsn or dsn_env", errInvalidConfig, inst.ID)
		}
	}

	for i, w := range c.Webhooks {
		if w.Enabled && w.URL == "" && !w.AllowInstanceOverride {
			return fmt.Errorf("%w: webhook %d is enabled without a url", errInvalidConfig, i)
		}
	}

	if c.Discord != nil && c.Discord.Enabled && c.Discord.URL == "" {
		return fmt.Errorf("%w: discord is enabled without a url", errInvalidConfig)
	}

	if c.Email != nil && c.Email.Enabled && c.Email.From == "" {
		return fmt.Errorf("%w: email is enabled without a from address", errInvalidConfig)
	}

	if c.NATS != nil && c.NATS.Enabled && c.NATS.URL == "" {
		return fmt.Errorf("%w: nats is enabled without a url", errInvalidConfig)
	}

	return nil
}

// ResolveDSN returns the instance DSN, reading DSNEnv when DSN is empty.
func (i *InstanceConfig) ResolveDSN() string {
	if i.DSN != "" {
		return i.DSN
	}

	return os.Getenv(i.DSNEnv)
}

// InstanceSet answers per-instance lookups from a loaded configuration.
type InstanceSet struct {
	mu        sync.RWMutex
	ids       []string
	instances map[string]InstanceConfig
}

func NewInstanceSet(instances []InstanceConfig) *InstanceSet {
	s := &InstanceSet{}
	s.Replace(instances)

	return s
}

// Replace swaps in a new instance list.
func (s *InstanceSet) Replace(instances []InstanceConfig) {
	ids := make([]string, 0, len(instances))
	byID := make(map[string]InstanceConfig, len(instances))

	for _, inst := range instances {
		ids = append(ids, inst.ID)
		byID[inst.ID] = inst
	}

	sort.Strings(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = ids
	s.instances = byID
}

func (s *InstanceSet) InstanceIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.ids...)
}

func (s *InstanceSet) Get(id string) (InstanceConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.instances[id]

	return inst, ok
}

// AlertingEnabled reports whether the instance has enabled thresholds.
func (s *InstanceSet) AlertingEnabled(id string) bool {
	inst, ok := s.Get(id)

	return ok && inst.Thresholds != nil && inst.Thresholds.Enabled
}

func (s *InstanceSet) Thresholds(id string) (*models.ThresholdConfig, bool) {
	inst, ok := s.Get(id)
	if !ok || inst.Thresholds == nil {
		return nil, false
	}

	return inst.Thresholds, true
}

var _ alerts.ThresholdProvider = (*InstanceSet)(nil)
