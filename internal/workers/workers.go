package workers

import (
	"context"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if services != nil && services.VersionCache != nil {
		w.workers = append(w.workers, NewCacheSweeper(services.VersionCache, cfg.SweepInterval, logger))
	}
	return w
}

// Run starts every worker and blocks until all of them return, which
// happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var g errgroup.Group
	for _, worker := range w.workers {
		g.Go(func() error {
			worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()
}
