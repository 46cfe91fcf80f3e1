// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics)
		}

		r.Post("/api/operator/login", h.login)

		r.Get("/api/verify", h.verifyFromQuery)
		r.Post("/api/verify", h.verifyFromBody)
		r.Post("/api/challenge", h.challenge)
	})

	// operator routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/decision", h.getDecision)
		r.With(h.decisionHashing).Post("/api/decision", h.resolveDecision)
		r.Delete("/api/decision", h.dismissDecision)

		r.Get("/api/keys", h.getKeys)
		r.Put("/api/keys", h.saveKeys)
		r.Delete("/api/keys", h.resetKeys)

		r.With(middleware.Compress(5, "application/json")).Get("/api/decisions", h.listDecisions)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
