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

package core

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/mfreeman451/pgradar/pkg/alerts"
	"github.com/mfreeman451/pgradar/pkg/api"
	"github.com/mfreeman451/pgradar/pkg/config"
	"github.com/mfreeman451/pgradar/pkg/db"
	"github.com/mfreeman451/pgradar/pkg/metrics"
	"github.com/mfreeman451/pgradar/pkg/monitoring"
	"github.com/mfreeman451/pgradar/pkg/probe"
	"github.com/mfreeman451/pgradar/pkg/sampler"
)

// Server owns the snapshot store, the alert pipeline and the periodic
// sampling and retention tasks.
type Server struct {
	config     *config.ConsoleConfig
	instances  *config.InstanceSet
	store      *metrics.Store
	database   db.Service
	backend    *db.SnapshotStore
	exporter   *metrics.Exporter
	dispatcher *alerts.Dispatcher
	manager    *alerts.Manager
	probe      InstanceProbe
	samplers   []*sampler.Sampler
	janitor    *monitoring.Monitor
	nats       *alerts.NATSChannel
}

type ServerOption func(*Server)

// WithProbe replaces the PostgreSQL probe.
func WithProbe(p InstanceProbe) ServerOption {
	return func(s *Server) {
		s.probe = p
	}
}

func NewServer(cfg *config.ConsoleConfig, opts ...ServerOption) (*Server, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	s := &Server{
		config:    cfg,
		instances: config.NewInstanceSet(cfg.Instances),
		store: metrics.NewStore(metrics.StoreConfig{
			RetentionMinutes: cfg.RetentionMinutes,
			Persistent:       cfg.Persistent,
		}),
		exporter: metrics.NewExporter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.probe == nil {
		s.probe = probe.NewPostgresProbe(probeInstances(cfg.Instances))
	}

	if cfg.Persistent {
		database, err := db.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errOpenDatabase, err)
		}

		s.database = database
		s.backend = db.NewSnapshotStore(database, cfg.RetentionMinutes)
	}

	channels, natsChannel, err := buildChannels(cfg)
	if err != nil {
		s.closeResources()
		return nil, err
	}

	s.nats = natsChannel
	s.dispatcher = alerts.NewDispatcher(alerts.NewCooldownTracker(), s.exporter, channels...)
	s.manager = alerts.NewManager(s.dispatcher, s.instances, s.probe)

	if err := s.buildSamplers(); err != nil {
		s.closeResources()
		return nil, err
	}

	s.janitor = monitoring.NewMonitor(monitoring.MonitorConfig{
		Name:        "retention janitor",
		Interval:    cfg.EvictionInterval.Duration(),
		SkipInitial: true,
	})

	return s, nil
}

func probeInstances(instances []config.InstanceConfig) []probe.Instance {
	out := make([]probe.Instance, 0, len(instances))

	for i := range instances {
		out = append(out, probe.Instance{ID: instances[i].ID, DSN: instances[i].ResolveDSN()})
	}

	return out
}

// buildSamplers creates the in-memory sampler and, in persistent mode, the
// backend sampler that writes to the database instead.
func (s *Server) buildSamplers() error {
	opts := sampler.Options{
		Name:         "sampler",
		Persistent:   s.config.Persistent,
		Interval:     s.config.SampleInterval.Duration(),
		ProbeTimeout: s.config.ProbeTimeout.Duration(),
		Concurrency:  s.config.Concurrency,
		Observer:     s.exporter,
	}

	memory, err := sampler.New(s.probe, s.store, s.manager, s.instances, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", errBuildSampler, err)
	}

	s.samplers = append(s.samplers, memory)

	if s.backend == nil {
		return nil
	}

	opts.Name = "backend sampler"
	opts.Persistent = false

	backend, err := sampler.New(s.probe, s.backend, s.manager, s.instances, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", errBuildSampler, err)
	}

	s.samplers = append(s.samplers, backend)

	return nil
}

// Start launches the samplers and the retention janitor. It does not block.
func (s *Server) Start(ctx context.Context) error {
	log.Printf("Starting pgradar core with %d instances (persistent=%v)",
		len(s.instances.InstanceIDs()), s.config.Persistent)

	for _, smp := range s.samplers {
		smp.Start(ctx)
	}

	s.janitor.Start(ctx, s.enforceRetention)

	return nil
}

// Stop halts the periodic tasks and releases connections.
func (s *Server) Stop(ctx context.Context) error {
	for _, smp := range s.samplers {
		smp.Stop(ctx)
	}

	s.janitor.Stop(ctx)
	s.closeResources()

	log.Printf("pgradar core stopped")

	return nil
}

func (s *Server) closeResources() {
	if s.probe != nil {
		s.probe.Close()
	}

	if s.nats != nil {
		s.nats.Close()
	}

	if s.database != nil {
		if err := s.database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}

// enforceRetention evicts expired in-memory entries, cleans the database in
// persistent mode and refreshes the store gauges.
func (s *Server) enforceRetention(context.Context) error {
	if removed := s.store.EvictOldEntries(); removed > 0 {
		log.Printf("Evicted %d snapshots older than %d minutes", removed, s.store.RetentionMinutes())
	}

	if s.backend != nil {
		if _, err := s.backend.Clean(); err != nil {
			return err
		}
	}

	s.exporter.ObserveStore(s.inspector().Summary())

	return nil
}

// reader is the store the API reads history from.
func (s *Server) reader() metrics.SnapshotStore {
	if s.backend != nil {
		return s.backend
	}

	return s.store
}

func (s *Server) inspector() api.StoreInspector {
	if s.backend != nil {
		return s.backend
	}

	return s.store
}

// Handler builds the HTTP API over the server's store and dispatcher.
func (s *Server) Handler() http.Handler {
	return api.NewAPIServer(
		s.reader(), s.inspector(), s.dispatcher,
		api.WithMetricsHandler(s.exporter.Handler()),
		api.WithCORSOrigins(s.config.CORSOrigins),
	).Handler()
}

func (s *Server) Store() *metrics.Store {
	return s.store
}

func (s *Server) Dispatcher() *alerts.Dispatcher {
	return s.dispatcher
}

// Samplers returns the in-memory sampler first, then the backend sampler if
// one exists.
func (s *Server) Samplers() []*sampler.Sampler {
	return s.samplers
}

var _ Service = (*Server)(nil)
