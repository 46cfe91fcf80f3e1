// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the inbound transport handlers of the server.
package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/handler/http"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg. metrics may be nil, in
// which case GET /metrics is not served.
func NewHandlers(services *service.Services, cfg *config.ServerConfig, metrics nethttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger,
			http.WithHashKey(cfg.App.HashKey),
			http.WithMetrics(metrics),
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
		)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
