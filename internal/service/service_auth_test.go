// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testPassword = "correct horse"
	testSignKey  = "sign-key"
	testIssuer   = "test-issuer"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.App{
		OperatorPasswordHash: string(hash),
		TokenSignKey:         testSignKey,
		TokenIssuer:          testIssuer,
		TokenDuration:        time.Hour,
	}, logger.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Login(context.Background(), models.LoginRequest{Password: testPassword})

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, OperatorSubject, token.Operator)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_BrokenHash(t *testing.T) {
	svc := NewAuthService(config.App{
		OperatorPasswordHash: "not-a-bcrypt-hash",
		TokenSignKey:         testSignKey,
		TokenIssuer:          testIssuer,
		TokenDuration:        time.Hour,
	}, logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: testPassword})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_TokenCreationFails(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(config.App{OperatorPasswordHash: string(hash)}, logger.Nop())

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: testPassword})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t)
	token, err := svc.Login(context.Background(), models.LoginRequest{Password: testPassword})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, OperatorSubject, parsed.Operator)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(t)
	expired, err := utils.GenerateJWTToken(testIssuer, OperatorSubject, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(t)
	foreign, err := utils.GenerateJWTToken(testIssuer, OperatorSubject, time.Hour, "other-key")
	require.NoError(t, err)

	for _, raw := range []string{"garbage", foreign.SignedString} {
		_, err = svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}
