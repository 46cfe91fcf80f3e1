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

func (h *Handler) getDecision(w http.ResponseWriter, r *http.Request) {
	status := h.services.VerifierService.Status(r.Context())
	utils.WriteJSON(w, status, http.StatusOK)
}

// resolveDecision grants or denies the pending value. Without a pending
// value it answers 409 Conflict.
func (h *Handler) resolveDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.VerifierService.Resolve(ctx, req.Grant)
	if err != nil {
		writeError(w, r, err, "resolving decision failed")
		return
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	log.Info().
		Str("operator", operator).
		Bool("granted", result.Granted).
		Msg("decision resolved")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) dismissDecision(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VerifierService.Dismiss(r.Context()); err != nil {
		writeError(w, r, err, "dismissing decision failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
