// Package sampler collects one snapshot per instance on every tick, stores it
// and hands it to alerting.
package sampler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/mfreeman451/pgradar/pkg/models"
	"github.com/mfreeman451/pgradar/pkg/monitoring"
	"golang.org/x/sync/errgroup"
)

const (
	defaultProbeTimeout = 10 * time.Second
	defaultConcurrency  = 4
	defaultInterval     = 30 * time.Second
)

type Options struct {
	Name string

	// Persistent makes Tick a no-op; a backend pipeline owns sampling.
	Persistent   bool
	Interval     time.Duration
	ProbeTimeout time.Duration
	Concurrency  int
	Observer     Observer
}

// TickResult summarizes one tick.
type TickResult struct {
	Sampled     int
	Failed      int
	AlertErrors int
	Skipped     bool
}

type Sampler struct {
	probe     Probe
	writer    SnapshotWriter
	checker   Checker
	instances InstanceSource
	opts      Options
	monitor   *monitoring.Monitor
	ticks     atomic.Int64
}

// New creates a Sampler. checker may be nil to disable alerting.
func New(probe Probe, writer SnapshotWriter, checker Checker, instances InstanceSource, opts Options) (*Sampler, error) {
	if probe == nil || writer == nil || instances == nil {
		return nil, errNilDependency
	}

	if opts.Name == "" {
		opts.Name = "sampler"
	}

	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}

	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = defaultProbeTimeout
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	return &Sampler{
		probe:     probe,
		writer:    writer,
		checker:   checker,
		instances: instances,
		opts:      opts,
		monitor: monitoring.NewMonitor(monitoring.MonitorConfig{
			Name:     opts.Name,
			Interval: opts.Interval,
		}),
	}, nil
}

// Start begins ticking in the background.
func (s *Sampler) Start(ctx context.Context) {
	s.monitor.Start(ctx, func(ctx context.Context) error {
		s.Tick(ctx)
		return nil
	})
}

func (s *Sampler) Stop(ctx context.Context) {
	s.monitor.Stop(ctx)
}

// Ticks returns how many non-skipped ticks have run.
func (s *Sampler) Ticks() int64 {
	return s.ticks.Load()
}

// Tick samples every instance once. A failure on one instance is logged and
// never affects the others; Tick itself does not fail.
func (s *Sampler) Tick(ctx context.Context) TickResult {
	if s.opts.Persistent {
		return TickResult{Skipped: true}
	}

	s.ticks.Add(1)

	var (
		sampled     atomic.Int64
		failed      atomic.Int64
		alertErrors atomic.Int64
	)

	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)

	for _, id := range s.instances.InstanceIDs() {
		g.Go(func() error {
			snap, err := s.sample(ctx, id)
			if err != nil {
				log.Printf("Error probing instance %s: %v", id, err)
				failed.Add(1)

				if s.opts.Observer != nil {
					s.opts.Observer.ProbeFailed(id)
				}

				return nil
			}

			if err := guard(func() error { s.writer.Add(id, snap); return nil }); err != nil {
				log.Printf("Error storing snapshot for instance %s: %v", id, err)
				failed.Add(1)

				return nil
			}

			sampled.Add(1)

			if s.opts.Observer != nil {
				if err := guard(func() error { s.opts.Observer.ObserveSnapshot(snap); return nil }); err != nil {
					log.Printf("Error observing snapshot for instance %s: %v", id, err)
				}
			}

			if s.checker == nil {
				return nil
			}

			err = guard(func() error {
				if !s.checker.AlertingEnabled(id) {
					return nil
				}

				return s.checker.CheckAndAlert(ctx, id, snap)
			})
			if err != nil {
				log.Printf("Error checking alerts for instance %s: %v", id, err)
				alertErrors.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	return TickResult{
		Sampled:     int(sampled.Load()),
		Failed:      int(failed.Load()),
		AlertErrors: int(alertErrors.Load()),
	}
}

func (s *Sampler) sample(ctx context.Context, instanceID string) (*models.MetricSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProbeTimeout)
	defer cancel()

	type result struct {
		snap *models.MetricSnapshot
		err  error
	}

	// a probe that ignores ctx still cannot hold the tick past the timeout
	ch := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("%w: %v", errProbePanic, r)}
			}
		}()

		snap, err := s.probe.Snapshot(ctx, instanceID)
		ch <- result{snap: snap, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}

		if res.snap == nil {
			return nil, errNilSnapshot
		}

		res.snap.InstanceID = instanceID

		if res.snap.SampledAt.IsZero() {
			res.snap.SampledAt = time.Now()
		}

		return res.snap, nil
	}
}

// guard runs fn, turning a panic into an error so one instance cannot take
// down the tick.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errStepPanic, r)
		}
	}()

	return fn()
}
