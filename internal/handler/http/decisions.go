// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-rsa-verifier/internal/app"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
)

// defaultHistoryLimit applies when ?limit= is absent.
const defaultHistoryLimit = 50

// listDecisions returns journal records, newest first.
func (h *Handler) listDecisions(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			logger.FromRequest(r).Error().Str("limit", raw).Msg(ErrInvalidLimit.Error())
			http.Error(w, ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.services.VerifierService.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, app.MsgListDecisionsFailed)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
