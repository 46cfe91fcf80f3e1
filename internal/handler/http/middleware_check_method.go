// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is known but the method is not. The verifier
// answers 404 instead, so callers cannot probe which methods a route takes.
// The registered methods are only written to the debug log.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowedMethods(router, r.URL.Path)).
			Msg("method is not registered for route")

		w.WriteHeader(http.StatusNotFound)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var methods []string
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		for method := range route.Handlers {
			methods = append(methods, method)
		}
	}
	sort.Strings(methods)
	return methods
}
