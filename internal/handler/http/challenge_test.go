// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChallenge_Success(t *testing.T) {
	ts, router := newTestRouter(t)
	want := models.ChallengeResponse{Verify: "2790L", Path: "/api/verify?verify=2790L"}
	ts.verifier.EXPECT().Challenge(gomock.Any(), "65").Return(want, nil)

	rec := doRequest(router, http.MethodPost, "/api/challenge", []byte(`{"plaintext":"65"}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.ChallengeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestChallenge_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid plaintext", err: fmt.Errorf("%w: x", service.ErrInvalidPlaintext), wantStatus: http.StatusBadRequest},
		{name: "stored keys are broken", err: service.ErrInvalidKeys, wantStatus: http.StatusUnprocessableEntity},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			ts.verifier.EXPECT().Challenge(gomock.Any(), "x").Return(models.ChallengeResponse{}, tt.err)

			rec := doRequest(router, http.MethodPost, "/api/challenge", []byte(`{"plaintext":"x"}`), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChallenge_InvalidJSON(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/challenge", []byte(`not json`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
