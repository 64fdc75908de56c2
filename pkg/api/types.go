package api

import (
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
)

type CountResponse struct {
	InstanceID string `json:"instance_id"`
	Count      int    `json:"count"`
}

type RetentionResponse struct {
	RetentionMinutes int  `json:"retention_minutes"`
	Persistent       bool `json:"persistent"`
}

// RatePoint is the per-second rate between a snapshot and its predecessor,
// reported at the later snapshot's time.
type RatePoint struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

type RatesResponse struct {
	InstanceID string      `json:"instance_id"`
	Metric     string      `json:"metric"`
	Hours      int         `json:"hours"`
	Rates      []RatePoint `json:"rates"`
}

type HistoryResponse struct {
	InstanceID string                  `json:"instance_id"`
	Hours      int                     `json:"hours"`
	Snapshots  []models.MetricSnapshot `json:"snapshots"`
}

type errorResponse struct {
	Error string `json:"error"`
}
