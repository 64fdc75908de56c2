package models

import "time"

// InstanceOverview is the server context attached to outgoing alerts.
type InstanceOverview struct {
	InstanceID    string        `json:"instance_id"`
	ServerVersion string        `json:"server_version"`
	StartedAt     time.Time     `json:"started_at"`
	Uptime        time.Duration `json:"uptime"`
	DatabaseCount int           `json:"database_count"`
}
