// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// errorStatusMap is consulted in order, so more specific sentinels come first.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrMalformedCiphertext, http.StatusBadRequest},
	{service.ErrInvalidPlaintext, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNoPendingDecision, http.StatusConflict},
	{service.ErrInvalidKeys, http.StatusUnprocessableEntity},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrKeysNotSaved, http.StatusInternalServerError},
	{store.ErrDecisionNotSaved, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the body text written for err. Ingest failures
// carry the fixed localized message the hosts display; server-side failures
// are not echoed back.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrMalformedCiphertext) {
		return models.OutputParseError
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and responds with the status and message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)
	http.Error(w, messageFromError(err), statusFromError(err))
}
