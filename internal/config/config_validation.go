// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied to unset fields after all sources are merged.
const (
	DefaultVersion         = "1.0.0"
	DefaultLogLevel        = "debug"
	DefaultDSN             = "data/onboarding.db"
	DefaultHTTPAddress     = "localhost:8000"
	DefaultRequestTimeout  = 60 * time.Second
	DefaultMaxUploadSize   = 10 << 20
	DefaultAnalysisTimeout = 30 * time.Second
	DefaultAllowedOrigin   = "*"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAnalysisTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return fmt.Errorf("%w: in-memory databases are not persistent", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize < 0 {
		return fmt.Errorf("%w: max upload size must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.AnalysisURL != "" {
		u, err := url.Parse(cfg.Adapter.AnalysisURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: analysis url must be an absolute http(s) url", ErrInvalidAdapterConfigs)
		}
	}

	return nil
}

// UsesStubGateway reports whether no analysis workflow is configured.
func (cfg *StructuredConfig) UsesStubGateway() bool {
	return cfg.Adapter.AnalysisURL == ""
}
