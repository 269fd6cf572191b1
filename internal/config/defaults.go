// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultTokenIssuer         = "passport-api"
	DefaultTokenDuration       = time.Hour
	DefaultPasswordHashCost    = 10
	DefaultCookieName          = "access_token"
	DefaultRememberMaxAge      = time.Hour
	DefaultPort                = "3000"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultHealthProbeInterval = 15 * time.Second

	// developmentSignKey is only ever used outside production.
	developmentSignKey = "development-only-insecure-sign-key"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = Development
	}
	if cfg.App.TokenSignKey == "" && !cfg.App.Env.IsProduction() {
		cfg.App.TokenSignKey = developmentSignKey
		cfg.App.insecureSignKey = true
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultCookieName
	}
	if cfg.Session.RememberMaxAge == 0 {
		cfg.Session.RememberMaxAge = DefaultRememberMaxAge
	}

	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == "" {
			port = DefaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workers.HealthProbeInterval == 0 {
		cfg.Workers.HealthProbeInterval = DefaultHealthProbeInterval
	}
}
