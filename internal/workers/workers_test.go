// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/scene"
	"github.com/MKhiriev/scene-keeper/internal/service"
)

// blockingWorker counts runs and blocks until its context is cancelled.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
}

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep(time.Time) int {
	c.calls.Add(1)
	return 1
}

func TestWorkers_RunUntilCancelled(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for w1.runs.Load() == 0 || w2.runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("workers were not started")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_RunEmpty(t *testing.T) {
	ws := &Workers{}

	// returns immediately without workers
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{VersionCache: cache.NewVersionCache(scene.VersionSum{}, time.Minute, 0)}

	ws := NewWorkers(services, config.Workers{SweepInterval: time.Minute}, logger.Nop())
	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}

	if len(NewWorkers(nil, config.Workers{}, logger.Nop()).workers) != 0 {
		t.Fatal("expected no workers without services")
	}
}

func TestCacheSweeper_Sweeps(t *testing.T) {
	sweeper := &countingSweeper{}
	cs := NewCacheSweeper(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cs.Run(ctx)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not tick")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestCacheSweeper_ExpiresConnections(t *testing.T) {
	vc := cache.NewVersionCache(scene.VersionSum{}, time.Minute, 0)
	vc.Set("conn-1", "room-1", 3)

	cs := NewCacheSweeper(vc, time.Hour, logger.Nop())
	cs.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if removed := cs.sweeper.Sweep(cs.now()); removed != 1 {
		t.Fatalf("expected 1 removed entry, got %d", removed)
	}
	if vc.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", vc.Len())
	}
}

func TestNewCacheSweeper_DefaultInterval(t *testing.T) {
	cs := NewCacheSweeper(&countingSweeper{}, 0, logger.Nop())
	if cs.interval != DefaultSweepInterval {
		t.Fatalf("expected default interval, got %v", cs.interval)
	}
}
