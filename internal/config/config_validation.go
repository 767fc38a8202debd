// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Firebase credential material is deliberately not checked here:
// it is decoded lazily by the connector on first use.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Auth.Provider {
	case AuthProviderFirebase:
	case AuthProviderIdentityToolkit:
		if cfg.Auth.APIKey == "" {
			return fmt.Errorf("%w: identitytoolkit provider requires an API key", ErrInvalidAuthConfigs)
		}
		if cfg.Auth.IdentityToolkitURL == "" {
			return fmt.Errorf("%w: identitytoolkit provider requires a base URL", ErrInvalidAuthConfigs)
		}
	case AuthProviderJWT:
		if cfg.Auth.TokenSignKey == "" {
			return fmt.Errorf("%w: jwt provider requires a sign key", ErrInvalidAuthConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidAuthConfigs, cfg.Auth.Provider)
	}

	switch cfg.Storage.Driver {
	case StorageDriverFirestore, StorageDriverMemory:
	case StorageDriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres driver requires a DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

// UsesFirebase reports whether any configured component needs the Firebase
// Admin SDK.
func (cfg *StructuredConfig) UsesFirebase() bool {
	return cfg.Auth.Provider == AuthProviderFirebase || cfg.Storage.Driver == StorageDriverFirestore
}
