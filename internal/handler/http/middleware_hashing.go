// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// decisionHashing rejects a request whose body does not match its
// HashSHA256 header. It passes everything through when no hash key is
// configured.
func (h *Handler) decisionHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).With().Str("func", "*Handler.decisionHashing").Logger()

		hashFromRequest := r.Header.Get(HashHeader)
		if hashFromRequest == "" {
			log.Error().Msg("hash header is missing")
			http.Error(w, ErrMissingHashHeader.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Equal(body, hashFromRequest) {
			log.Error().
				Str("hash from request", hashFromRequest).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")
			http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		log.Debug().Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
