// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
)

// dialTimeout bounds a single connection attempt.
const dialTimeout = 10 * time.Second

// Dialer opens a connection to the backend described by settings.
type Dialer func(ctx context.Context, settings Settings, log *logger.Logger) (Storage, error)

// connectAttempt is a shared in-flight connection. done is closed once
// storage or err is set.
type connectAttempt struct {
	done    chan struct{}
	storage Storage
	err     error
}

// Connector owns the connection to the scene store.
//
// The first Connect call dials; every caller, including those arriving while
// the dial is in flight, receives the result of that same attempt. A failed
// attempt is remembered until Reset: there is no automatic retry loop.
type Connector struct {
	settings  Settings
	configErr error
	dial      Dialer
	logger    *logger.Logger

	mu      sync.Mutex
	attempt *connectAttempt
	closed  bool
}

// NewConnector parses cfg and returns a connector for it. A configuration
// error is logged and kept: the connector is then inert and every Connect
// fails fast with it.
func NewConnector(cfg config.Storage, log *logger.Logger) *Connector {
	return newConnector(cfg, DialStorage, log)
}

func newConnector(cfg config.Storage, dial Dialer, log *logger.Logger) *Connector {
	settings, err := ParseSettings(cfg, log)
	if err != nil {
		log.Err(err).Str("func", "NewConnector").Msg("invalid store configuration, store is disabled")
	} else {
		log.Info().
			Str("func", "NewConnector").
			Str("backend", string(settings.Backend)).
			Dur("commit_timeout", settings.CommitTimeout).
			Msg("store connector configured")
	}

	return &Connector{
		settings:  settings,
		configErr: err,
		dial:      dial,
		logger:    log,
	}
}

// Settings returns the parsed configuration.
func (c *Connector) Settings() Settings {
	return c.settings
}

// Connect returns the shared [Storage], dialing it on first use.
//
// ctx only bounds how long this caller waits: the dial itself is detached
// so that an impatient caller does not fail the attempt for everyone else.
func (c *Connector) Connect(ctx context.Context) (Storage, error) {
	if c.configErr != nil {
		return nil, c.configErr
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrConnectorClosed
	}
	a := c.attempt
	if a == nil {
		a = &connectAttempt{done: make(chan struct{})}
		c.attempt = a
		go c.run(a)
	}
	c.mu.Unlock()

	select {
	case <-a.done:
		return a.storage, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Connector) run(a *connectAttempt) {
	defer close(a.done)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	storage, err := c.dial(ctx, c.settings, c.logger)
	if err != nil {
		c.logger.Err(err).
			Str("func", "Connector.run").
			Str("backend", string(c.settings.Backend)).
			Msg("error connecting to store")
		if !errors.Is(err, ErrConnecting) {
			err = fmt.Errorf("%w: %w", ErrConnecting, err)
		}
		a.err = err
		return
	}

	c.logger.Info().
		Str("func", "Connector.run").
		Str("backend", storage.Backend()).
		Msg("connected to store")
	a.storage = storage
}

// Reset forgets the current attempt so that the next Connect dials from
// scratch. A connection that was established is closed. Reset waits for an
// in-flight dial to finish, bounded by ctx.
func (c *Connector) Reset(ctx context.Context) error {
	c.mu.Lock()
	a := c.attempt
	c.attempt = nil
	c.mu.Unlock()

	return c.release(ctx, a)
}

// Close resets the connector and makes every later Connect fail with
// [ErrConnectorClosed].
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	a := c.attempt
	c.attempt = nil
	c.mu.Unlock()

	return c.release(ctx, a)
}

func (c *Connector) release(ctx context.Context, a *connectAttempt) error {
	if a == nil {
		return nil
	}

	select {
	case <-a.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if a.storage == nil {
		return nil
	}
	if err := a.storage.Close(ctx); err != nil {
		c.logger.Err(err).Str("func", "Connector.release").Msg("error closing store connection")
		return err
	}
	return nil
}

// DialStorage opens the backend named by settings. SQL backends are
// migrated before they are returned.
func DialStorage(ctx context.Context, settings Settings, log *logger.Logger) (Storage, error) {
	switch settings.Backend {
	case BackendMongo:
		return NewMongoStorage(ctx, settings, log)
	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, settings.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
		}
		return newMigratedSQLStorage(ctx, db, settings, log)
	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, settings.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
		}
		return newMigratedSQLStorage(ctx, db, settings, log)
	case BackendMemory:
		return NewMemoryStorage(settings.CommitTimeout), nil
	case BackendNull:
		return NewNullStorage(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, settings.Backend)
	}
}

func newMigratedSQLStorage(ctx context.Context, db *DB, settings Settings, log *logger.Logger) (Storage, error) {
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	return NewSQLStorage(db, settings.CommitTimeout, log), nil
}
