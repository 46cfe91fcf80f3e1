// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey  string
	password string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a REST adapter for the server at
// adapterCfg.HTTPAddress. A bare "host:port" address is treated as http.
//
// When adapterCfg.OperatorPassword is set, operator requests that come back
// 401 trigger one automatic login and are retried once.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey:  appCfg.HashKey,
		password: adapterCfg.OperatorPassword,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Password: password}).
		Post("/api/operator/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapDomainError(resp, statusMapping{
		ErrBadRequest:   service.ErrInvalidDataProvided,
		ErrUnauthorized: service.ErrWrongPassword,
	}); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) Ingest(ctx context.Context, ciphertext string) (models.PendingDecision, error) {
	var pending models.PendingDecision

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyRequest{Verify: ciphertext}).
		SetResult(&pending).
		Post("/api/verify")
	if err != nil {
		return models.PendingDecision{}, fmt.Errorf("ingest request: %w", err)
	}
	if err = mapDomainError(resp, statusMapping{ErrBadRequest: service.ErrMalformedCiphertext}); err != nil {
		return models.PendingDecision{}, err
	}

	return pending, nil
}

func (h *httpServerAdapter) Resolve(ctx context.Context, grant bool) (models.DecisionResult, error) {
	body, err := json.Marshal(models.DecisionRequest{Grant: grant})
	if err != nil {
		return models.DecisionResult{}, fmt.Errorf("encode decision request: %w", err)
	}

	var result models.DecisionResult
	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		req.SetHeader("Content-Type", "application/json").
			SetBody(body).
			SetResult(&result)
		if h.hashKey != "" {
			req.SetHeader(hashHeader, utils.HashString(string(body), h.hashKey))
		}
		return req.Post("/api/decision")
	})
	if err != nil {
		return models.DecisionResult{}, fmt.Errorf("resolve request: %w", err)
	}
	if err = mapDomainError(resp, statusMapping{
		ErrConflict:      service.ErrNoPendingDecision,
		ErrUnprocessable: service.ErrInvalidKeys,
	}); err != nil {
		return models.DecisionResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Dismiss(ctx context.Context) error {
	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Delete("/api/decision")
	})
	if err != nil {
		return fmt.Errorf("dismiss request: %w", err)
	}

	return mapDomainError(resp, statusMapping{ErrConflict: service.ErrNoPendingDecision})
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.DecisionStatus, error) {
	var status models.DecisionStatus
	if err := h.getJSON(ctx, "/api/decision", &status); err != nil {
		return models.DecisionStatus{}, fmt.Errorf("status request: %w", err)
	}
	return status, nil
}

func (h *httpServerAdapter) GetKeys(ctx context.Context) (models.KeyTriple, error) {
	var keys models.KeyTriple
	if err := h.getJSON(ctx, "/api/keys", &keys); err != nil {
		return models.KeyTriple{}, fmt.Errorf("get keys request: %w", err)
	}
	return keys, nil
}

func (h *httpServerAdapter) SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error) {
	var saved models.KeyTriple
	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(keys).
			SetResult(&saved).
			Put("/api/keys")
	})
	if err != nil {
		return models.KeyTriple{}, fmt.Errorf("save keys request: %w", err)
	}
	if err = mapDomainError(resp, statusMapping{ErrBadRequest: service.ErrInvalidKeys}); err != nil {
		return models.KeyTriple{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) ResetKeys(ctx context.Context) (models.KeyTriple, error) {
	var keys models.KeyTriple
	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&keys).Delete("/api/keys")
	})
	if err != nil {
		return models.KeyTriple{}, fmt.Errorf("reset keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyTriple{}, err
	}

	return keys, nil
}

func (h *httpServerAdapter) Challenge(ctx context.Context, plaintext string) (models.ChallengeResponse, error) {
	var challenge models.ChallengeResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{Plaintext: plaintext}).
		SetResult(&challenge).
		Post("/api/challenge")
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("challenge request: %w", err)
	}
	if err = mapDomainError(resp, statusMapping{
		ErrBadRequest:    service.ErrInvalidPlaintext,
		ErrUnprocessable: service.ErrInvalidKeys,
	}); err != nil {
		return models.ChallengeResponse{}, err
	}

	return challenge, nil
}

func (h *httpServerAdapter) History(ctx context.Context, limit uint64) ([]models.DecisionRecord, error) {
	var records []models.DecisionRecord

	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		if limit > 0 {
			req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
		}
		return req.SetResult(&records).Get("/api/decisions")
	})
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(result).Get(path)
	})
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

// authed sends an operator request built by send. On 401 it logs in with the
// configured password and sends the request once more.
func (h *httpServerAdapter) authed(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send(h.authedRequest(ctx))
	if err != nil || resp.StatusCode() != http.StatusUnauthorized || h.password == "" {
		return resp, err
	}

	h.logger.Debug().Msg("operator token rejected, logging in again")
	if err = h.Login(ctx, h.password); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return resp, nil
		}
		return nil, err
	}

	return send(h.authedRequest(ctx))
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
