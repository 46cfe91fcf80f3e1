// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogin_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		callLogin  bool
		token      models.Token
		err        error
		wantStatus int
		wantHeader string
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"password":"s3cret"}`,
			callLogin:  true,
			token:      models.Token{SignedString: "signed.jwt.value", Operator: service.OperatorSubject},
			wantStatus: http.StatusOK,
			wantHeader: "Bearer signed.jwt.value",
		},
		{
			name:       "invalid JSON",
			body:       `{"password":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid JSON was passed",
		},
		{
			name:       "empty password",
			body:       `{"password":""}`,
			callLogin:  true,
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name:       "wrong password",
			body:       `{"password":"nope"}`,
			callLogin:  true,
			err:        fmt.Errorf("login: %w", service.ErrWrongPassword),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid password",
		},
		{
			name:       "token creation failed",
			body:       `{"password":"s3cret"}`,
			callLogin:  true,
			err:        errors.Join(service.ErrTokenCreationFailed, errors.New("sign")),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			if tt.callLogin {
				ts.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.token, tt.err)
			}

			rec := doRequest(router, http.MethodPost, "/api/operator/login", []byte(tt.body), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Authorization"))
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

// TestLogin_PassesPassword verifies the decoded request reaches the service.
func TestLogin_PassesPassword(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Password: "s3cret"}).
		Return(models.Token{SignedString: "t"}, nil)

	rec := doRequest(router, http.MethodPost, "/api/operator/login", []byte(`{"password":"s3cret"}`), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
