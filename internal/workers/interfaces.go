// Package workers runs background maintenance jobs of the server, such as
// expiring version cache entries of connections that never closed cleanly.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper removes expired entries and reports how many were removed.
// [cache.VersionCache] implements it.
type Sweeper interface {
	Sweep(now time.Time) int
}
