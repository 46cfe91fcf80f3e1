// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// localVerifier exposes in-process services through the same surface the
// remote adapter offers.
type localVerifier struct {
	service.KeyService
	service.VerifierService
}

func newLocalVerifier(services *service.Services) localVerifier {
	return localVerifier{
		KeyService:      services.KeyService,
		VerifierService: services.VerifierService,
	}
}

// Status never fails in-process.
func (l localVerifier) Status(ctx context.Context) (models.DecisionStatus, error) {
	return l.VerifierService.Status(ctx), nil
}
