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

// challenge encrypts a decimal plaintext with the current public key and
// returns the ciphertext together with a ready verify path.
func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.VerifierService.Challenge(r.Context(), req.Plaintext)
	if err != nil {
		writeError(w, r, err, "challenge failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
