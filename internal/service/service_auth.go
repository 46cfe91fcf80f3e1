// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// OperatorSubject is the subject claim of every operator token.
const OperatorSubject = "operator"

// authService checks the operator password against a bcrypt hash and issues
// JWTs for the decision and key routes.
type authService struct {
	// passwordHash is the bcrypt hash of the operator password.
	passwordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the operator settings in
// cfg. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		passwordHash:  []byte(cfg.OperatorPasswordHash),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login compares req.Password with the configured bcrypt hash and issues a
// token on success.
//
// Returns:
//   - ErrInvalidDataProvided if the password is empty.
//   - ErrWrongPassword if the password does not match.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Password == "" {
		log.Error().Msg("empty operator password provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().Msg("wrong operator password")
			return models.Token{}, ErrWrongPassword
		}
		log.Err(err).Msg("operator password hash is unusable")
		return models.Token{}, fmt.Errorf("error comparing operator password: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, OperatorSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. An expired token yields
// ErrTokenIsExpired; any other failure yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
