// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// passport-api server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the runtime environment,
	// token parameters, password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Session holds the session cookie settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Port is a shorthand for the HTTP listen port. When Server.HTTPAddress
	// is empty the server listens on ":<Port>".
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Environment is the runtime mode of the server. It controls error
// verbosity, cookie security and the log level.
type Environment string

const (
	// Development exposes error details to clients and allows a built-in
	// token signing key.
	Development Environment = "development"

	// Production hides error details, marks cookies Secure and requires an
	// explicit token signing key.
	Production Environment = "production"
)

// IsProduction reports whether e is the production mode.
func (e Environment) IsProduction() bool {
	return e == Production
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// Env is the runtime mode ("development" or "production").
	// Env: APP_ENV
	Env Environment `env:"ENV"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Required in production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor used for new password
	// hashes. Values below 10 are rejected.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// insecureSignKey is set when the development fallback key was applied.
	insecureSignKey bool
}

// UsesInsecureSignKey reports whether the built-in development signing key
// is in use.
func (a App) UsesInsecureSignKey() bool {
	return a.insecureSignKey
}

// Session holds the session cookie settings.
type Session struct {
	// CookieName is the name of the cookie carrying the session token.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// RememberMaxAge is the cookie lifetime used when the client asks to be
	// remembered. Without "remember me" the cookie lives for the browser
	// session only.
	// Env: SESSION_REMEMBER_MAX_AGE
	RememberMaxAge time.Duration `env:"REMEMBER_MAX_AGE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// PostgreSQL URLs ("postgres://...") use the pgx driver; "sqlite://path"
	// and "file:path" DSNs use the SQLite driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the optional gRPC health
	// server listens. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthProbeInterval is how often the database health probe runs.
	// Env: WORKERS_HEALTH_PROBE_INTERVAL
	HealthProbeInterval time.Duration `env:"HEALTH_PROBE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
