// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-rsa-verifier binaries. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds verifier settings: codec strictness, key identifier,
	// operator credentials and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for key and journal persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings the terminal client uses to reach a remote
	// verifier server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Verify is a ciphertext in L-format the terminal client ingests on
	// start. Populated via the VERIFY environment variable or -verify flag.
	Verify string `env:"VERIFY"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// KeyID is the identifier the key triple is persisted under.
	// Env: APP_KEY_ID
	KeyID string `env:"KEY_ID"`

	// LenientDigits disables the [0, 9999] range check on L-format
	// fragments.
	// Env: APP_LENIENT_DIGITS
	LenientDigits bool `env:"LENIENT_DIGITS"`

	// OperatorPasswordHash is the bcrypt hash of the operator password that
	// unlocks decision and key routes.
	// Env: APP_OPERATOR_PASSWORD_HASH
	OperatorPasswordHash string `env:"OPERATOR_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify operator JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an operator token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key for the HashSHA256 request integrity header.
	// Integrity checking is off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds file-system storage settings.
	Files Files `envPrefix:"FILES_"`

	// JournalRetention is how long decision records are kept.
	// Env: STORAGE_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or an SQLite file
	// path. The driver is chosen from the DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system storage settings.
type Files struct {
	// KeysPath is a JSON file the key triple is stored in when no DSN is
	// configured.
	// Env: STORAGE_FILES_KEYS_PATH
	KeysPath string `env:"KEYS_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side settings for a remote verifier server.
type Adapter struct {
	// HTTPAddress is the base URL of the verifier server
	// (e.g. "http://localhost:8080"). Empty means local mode.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OperatorPassword is sent to /api/operator/login in remote mode.
	// Env: ADAPTER_OPERATOR_PASSWORD
	OperatorPassword string `env:"OPERATOR_PASSWORD"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval is how often the decision journal is pruned.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
