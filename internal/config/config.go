// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// check-in client and the dev server. It is populated by merging defaults,
// environment variables (optionally loaded from a .env file), command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by every binary.
	App App `envPrefix:"APP_"`

	// Auth holds token issuing settings used by the dev server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the local SQLite database settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the dev server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote API endpoint the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the client background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header on batch requests). Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Timezone is the IANA zone the remote API expects client timestamps
	// in (e.g. "America/Sao_Paulo"). "Local" uses the device zone.
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds JWT settings of the dev server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the client's local store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "ticket-keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the dev server.
type Server struct {
	// HTTPAddress is the TCP address the dev server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote API settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API including its path
	// prefix (e.g. "https://tickets.example.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background workers.
type Workers struct {
	// SyncInterval is the period of the automatic sync while online.
	// Zero disables periodic sync; reconnects still trigger one.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is how often the connectivity prober checks the API.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Default values applied before any other source.
const (
	DefaultAdapterAddress = "http://localhost:8080/api"
	DefaultServerAddress  = "localhost:8080"
	DefaultDSN            = "ticket-keeper.db"
	DefaultTimezone       = "Local"
	DefaultTokenIssuer    = "ticket-keeper-devserver"

	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultTokenDuration         = 12 * time.Hour
	DefaultSyncInterval          = 5 * time.Minute
	DefaultProbeInterval         = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Timezone: DefaultTimezone},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Workers: Workers{
			SyncInterval:  DefaultSyncInterval,
			ProbeInterval: DefaultProbeInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override non-zero fields of earlier ones:
//  1. Defaults
//  2. Environment variables (a .env file in the working directory is
//     loaded first and never overrides variables already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}
