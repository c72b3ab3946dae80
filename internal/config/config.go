// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// scene-keeper server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as room token parameters
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the connection string and transaction settings of the
	// scene store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote server settings used by the scenectl client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the per-connection version cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// StoreConfig is the legacy single-value store configuration, a JSON
	// object of the form {"uri": "..."}. It is consulted only when
	// Storage.URI is empty.
	// Env: STORE_CONFIG
	StoreConfig string `env:"STORE_CONFIG"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control room token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify room tokens.
	// When empty, room routes are served without token checks.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued room token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a room token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the scene store settings.
type Storage struct {
	// URI is the store connection string. Its scheme selects the backend:
	// mongodb, mongodb+srv, postgres, postgresql, sqlite, file, memory or
	// null. An empty URI selects the null store.
	// Env: STORAGE_URI
	URI string `env:"URI"`

	// Database is the MongoDB database name.
	// Env: STORAGE_DATABASE
	Database string `env:"DATABASE"`

	// CommitTimeout bounds how long a scene transaction may take to commit.
	// Env: STORAGE_COMMIT_TIMEOUT
	CommitTimeout time.Duration `env:"COMMIT_TIMEOUT"`

	// Legacy is copied from [StructuredConfig.StoreConfig] by the builder.
	Legacy string `json:"-"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base address of a scene-keeper server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds settings of the per-connection version cache.
type Cache struct {
	// TTL is how long a connection's cached scene version survives without
	// being refreshed.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// MaxEntries bounds the number of (connection, room) entries held at
	// once. The least recently set entry is evicted past the bound.
	// Env: CACHE_MAX_ENTRIES
	MaxEntries int `env:"MAX_ENTRIES"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often expired version cache entries are removed.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDatabase       = "excalidraw-store"
	DefaultCommitTimeout  = time.Second
	DefaultCacheTTL       = 24 * time.Hour
	DefaultCacheEntries   = 100_000
	DefaultSweepInterval  = 10 * time.Minute
	DefaultTokenDuration  = 24 * time.Hour
	DefaultTokenIssuer    = "scene-keeper"
	DefaultAdapterAddress = "http://localhost:8080"
)

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			Database:      DefaultDatabase,
			CommitTimeout: DefaultCommitTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache: Cache{
			TTL:        DefaultCacheTTL,
			MaxEntries: DefaultCacheEntries,
		},
		Workers: Workers{
			SweepInterval: DefaultSweepInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
