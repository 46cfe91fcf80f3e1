// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-rsa-verifier/internal/app"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// verifyFromQuery ingests the ciphertext of the ?verify= query parameter.
// A missing parameter is ingested as an empty ciphertext and fails like any
// other malformed input.
func (h *Handler) verifyFromQuery(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, r.URL.Query().Get("verify"))
}

// verifyFromBody ingests the ciphertext of a {"verify": "..."} body.
func (h *Handler) verifyFromBody(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	h.ingest(w, r, req.Verify)
}

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request, ciphertext string) {
	pending, err := h.services.VerifierService.Ingest(r.Context(), ciphertext)
	if err != nil {
		writeError(w, r, err, "ingest failed")
		return
	}

	logger.FromRequest(r).Debug().
		Str("ciphertext", pending.Ciphertext).
		Str("plaintext", pending.Plaintext).
		Msg("decision is pending")

	utils.WriteJSON(w, pending, http.StatusOK)
}
