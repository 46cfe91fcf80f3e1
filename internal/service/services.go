// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/metrics"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/internal/validators"
)

// Services bundles the services a host needs.
type Services struct {
	AuthService     AuthService
	KeyService      KeyService
	VerifierService VerifierService
	AppInfoService  AppInfoService
}

// NewServices wires the server-side services over storages.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	keyService, verifierService := newVerifier(storages, cfg.App, recorder, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		KeyService:      keyService,
		VerifierService: verifierService,
		AppInfoService:  appInfoService,
	}, nil
}

// NewLocalServices wires the services the terminal client runs in-process.
// No operator authentication is involved.
func NewLocalServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	keyService, verifierService := newVerifier(storages, cfg, metrics.Nop{}, logger)

	return &Services{
		KeyService:      keyService,
		VerifierService: verifierService,
	}
}

func newVerifier(storages *store.Storages, cfg config.App, recorder metrics.Recorder, logger *logger.Logger) (KeyService, VerifierService) {
	codec := bigdigits.NewCodec(!cfg.LenientDigits)

	keyService := NewKeyValidationService(validators.NewKeyTripleValidator(codec)).
		Wrap(NewKeyService(storages.KeyRepository, cfg.KeyID, logger))

	verifierService := NewVerifierService(keyService, storages.DecisionRepository, codec, recorder, logger)

	return keyService, verifierService
}
