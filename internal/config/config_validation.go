// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants that hold for every binary regardless of role.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.JournalRetention < 0 || cfg.Workers.PruneInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.KeysPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.OperatorPasswordHash == "" || cfg.App.KeyID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.PruneInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote() {
		if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
			return ErrInvalidAdapterConfigs
		}
		if cfg.Adapter.RequestTimeout == 0 || cfg.Adapter.OperatorPassword == "" {
			return ErrInvalidAdapterConfigs
		}
		return nil
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.KeysPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.KeyID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
