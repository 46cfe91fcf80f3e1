// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rsa-verifier/internal/app"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

func (h *Handler) getKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.KeyService.GetKeys(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgLoadKeysFailed)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

// saveKeys stores a new key triple. Each field must be valid L-format and
// the modulus must be at least 1; anything else is a 400.
func (h *Handler) saveKeys(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var keys models.KeyTriple
	if err := json.NewDecoder(r.Body).Decode(&keys); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.KeyService.SaveKeys(r.Context(), keys)
	if err != nil {
		if errors.Is(err, service.ErrInvalidKeys) {
			log.Err(err).Msg(app.MsgInvalidKeys)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, r, err, app.MsgSaveKeysFailed)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// resetKeys drops the stored triple and returns the default key.
func (h *Handler) resetKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.KeyService.ResetKeys(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgResetKeysFailed)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}
