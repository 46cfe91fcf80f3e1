// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
)

// Handler serves the REST API over the verifier services.
type Handler struct {
	services *service.Services

	// hasher checks the HashSHA256 header. Nil disables the check.
	hasher *utils.Hasher

	// metrics serves GET /metrics when set.
	metrics http.Handler

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithHashKey enables HashSHA256 integrity checking with key.
// An empty key leaves checking disabled.
func WithHashKey(key string) Option {
	return func(h *Handler) {
		if key != "" {
			h.hasher = utils.NewHasher(key)
		}
	}
}

// WithMetrics exposes m on GET /metrics.
func WithMetrics(m http.Handler) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithRequestTimeout bounds every request with d. Zero means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("integrity_check", h.hasher != nil).
		Bool("metrics", h.metrics != nil).
		Msg("http handler created")
	return h
}
