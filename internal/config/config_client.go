// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Client defaults.
const (
	DefaultClientBaseURL = "http://localhost:3000"
	DefaultClientTimeout = 15 * time.Second
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// BaseURL is the root URL of the passport-api server.
	// Env: PASSPORT_API_URL
	BaseURL string `env:"PASSPORT_API_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: PASSPORT_API_TIMEOUT
	RequestTimeout time.Duration `env:"PASSPORT_API_TIMEOUT"`

	// CookieFile is where the client persists the session cookie between
	// invocations. Empty keeps the session in memory only.
	// Env: PASSPORT_API_COOKIE_FILE
	CookieFile string `env:"PASSPORT_API_COOKIE_FILE"`
}

// GetClientConfig reads the client configuration from the environment,
// fills in defaults and validates the result. Command-line flags of the
// client override the returned values.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultClientBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientTimeout
	}

	return cfg, cfg.validate()
}

// Validate checks a client config that was modified after loading.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
