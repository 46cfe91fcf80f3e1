// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrMalformedCiphertext, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", service.ErrInvalidPlaintext), http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrNoPendingDecision, http.StatusConflict},
		{service.ErrInvalidKeys, http.StatusUnprocessableEntity},
		{fmt.Errorf("list: %w", store.ErrScanningRows), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, models.OutputParseError, messageFromError(fmt.Errorf("x: %w", service.ErrMalformedCiphertext)))
	assert.Equal(t, service.ErrNoPendingDecision.Error(), messageFromError(service.ErrNoPendingDecision))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), messageFromError(errors.New("secret dsn leaked")))
}
