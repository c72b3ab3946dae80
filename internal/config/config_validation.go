// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The storage URI itself is not checked here: a malformed connection string
// degrades the store to an inert client at runtime instead of aborting
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.CommitTimeout <= 0 {
		return fmt.Errorf("%w: commit timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey != "" && cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("%w: ttl must be positive", ErrInvalidCacheConfigs)
	}

	if cfg.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: max entries must be positive", ErrInvalidCacheConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
