// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
//
// The client runs in one of two modes. In remote mode ([ClientConfig.Remote])
// every operation goes through the HTTP adapter; otherwise keys are loaded
// from local storage and the verifier runs in-process.
type ClientConfig struct {
	// App contains codec and key settings.
	App App
	// Adapter contains the remote server address, timeout and credentials.
	Adapter Adapter
	// Storage contains local key storage settings.
	Storage Storage
	// Verify is a ciphertext ingested right after start-up.
	Verify string
}

// Remote reports whether the client talks to a verifier server.
func (cfg *ClientConfig) Remote() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the client-relevant fields of cfg and validates them.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Verify:  cfg.Verify,
	}

	return clientCfg, clientCfg.validate()
}
