/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package monitoring pkg/monitoring/monitor.go
package monitoring

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// MonitorConfig holds configuration for a periodic task.
type MonitorConfig struct {
	Name     string
	Interval time.Duration
	// SkipInitial waits one interval before the first check.
	SkipInitial bool
}

// Monitor runs a check on a fixed interval until stopped.
type Monitor struct {
	config   MonitorConfig
	done     chan struct{}
	finished chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// NewMonitor creates a new monitor.
func NewMonitor(cfg MonitorConfig) *Monitor {
	if cfg.Name == "" {
		cfg.Name = "monitor"
	}

	return &Monitor{
		config:   cfg,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start runs the loop in a background goroutine. The monitor counts as
// started once Start returns, so a later Stop always waits for it.
func (m *Monitor) Start(ctx context.Context, check func(context.Context) error) {
	if !m.started.CompareAndSwap(false, true) {
		log.Printf("%s already running", m.config.Name)
		return
	}

	go m.run(ctx, check)
}

// StartMonitoring blocks, running check every interval until ctx is done or
// Stop is called. Check errors are logged and do not end the loop.
func (m *Monitor) StartMonitoring(ctx context.Context, check func(context.Context) error) {
	if !m.started.CompareAndSwap(false, true) {
		log.Printf("%s already running", m.config.Name)
		return
	}

	m.run(ctx, check)
}

func (m *Monitor) run(ctx context.Context, check func(context.Context) error) {
	defer close(m.finished)

	// stopped before the loop got going
	select {
	case <-m.done:
		return
	case <-ctx.Done():
		return
	default:
	}

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	log.Printf("Starting %s with interval %v", m.config.Name, m.config.Interval)

	if !m.config.SkipInitial {
		if err := check(ctx); err != nil {
			log.Printf("Initial %s check failed: %v", m.config.Name, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			if err := check(ctx); err != nil {
				log.Printf("%s check failed: %v", m.config.Name, err)
			}
		}
	}
}

// Stop ends the loop and waits for an in-flight check to return, or for ctx
// to expire.
func (m *Monitor) Stop(ctx context.Context) {
	m.stopOnce.Do(func() {
		close(m.done)
	})

	if !m.started.Load() {
		return
	}

	select {
	case <-m.finished:
	case <-ctx.Done():
		log.Printf("Timed out waiting for %s to stop", m.config.Name)
	}
}
