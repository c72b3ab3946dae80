package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/logger"
)

// DefaultSweepInterval is used when no positive interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// CacheSweeper periodically drops expired version cache entries.
type CacheSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewCacheSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *CacheSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheSweeper{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *CacheSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("cache sweeper started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("cache sweeper stopped")
			return
		case <-ticker.C:
			if removed := c.sweeper.Sweep(c.now()); removed > 0 {
				c.logger.Debug().Str("func", "*CacheSweeper.Run").Int("removed", removed).Msg("expired connections swept")
			}
		}
	}
}
