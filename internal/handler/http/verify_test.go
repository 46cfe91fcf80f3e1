// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerify_TableTest(t *testing.T) {
	pending := models.PendingDecision{Ciphertext: "2790L", Plaintext: "65"}

	tests := []struct {
		name       string
		method     string
		path       string
		body       []byte
		ciphertext string
		ingestErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "GET with query parameter",
			method:     http.MethodGet,
			path:       "/api/verify?verify=2790L",
			ciphertext: "2790L",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with JSON body",
			method:     http.MethodPost,
			path:       "/api/verify",
			body:       []byte(`{"verify":"2790L"}`),
			ciphertext: "2790L",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET without parameter is malformed",
			method:     http.MethodGet,
			path:       "/api/verify",
			ciphertext: "",
			ingestErr:  service.ErrMalformedCiphertext,
			wantStatus: http.StatusBadRequest,
			wantBody:   models.OutputParseError,
		},
		{
			name:       "wrapped malformed error",
			method:     http.MethodPost,
			path:       "/api/verify",
			body:       []byte(`{"verify":"abcL"}`),
			ciphertext: "abcL",
			ingestErr:  fmt.Errorf("decrypting: %w", service.ErrMalformedCiphertext),
			wantStatus: http.StatusBadRequest,
			wantBody:   models.OutputParseError,
		},
		{
			name:       "key storage failure is not echoed",
			method:     http.MethodGet,
			path:       "/api/verify?verify=2790L",
			ciphertext: "2790L",
			ingestErr:  errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			if tt.ingestErr != nil {
				ts.verifier.EXPECT().Ingest(gomock.Any(), tt.ciphertext).Return(models.PendingDecision{}, tt.ingestErr)
			} else {
				ts.verifier.EXPECT().Ingest(gomock.Any(), tt.ciphertext).Return(pending, nil)
			}

			rec := doRequest(router, tt.method, tt.path, tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
				assert.NotContains(t, rec.Body.String(), "connection refused")
				return
			}

			var got models.PendingDecision
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, pending, got)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestVerify_InvalidJSON(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/verify", []byte(`{"verify":`), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestVerify_QueryIsUnescaped verifies that the service receives the
// decoded query value.
func TestVerify_QueryIsUnescaped(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.verifier.EXPECT().Ingest(gomock.Any(), "3473L6035L").Return(models.PendingDecision{}, nil)

	rec := doRequest(router, http.MethodGet, "/api/verify?verify=3473L%36035L", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
