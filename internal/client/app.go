// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rsa-verifier/internal/adapter"
	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/internal/tui"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// Runner is the UI loop the client drives.
type Runner interface {
	Run(ctx context.Context, ciphertext string) error
}

// App is the terminal client.
type App struct {
	runner Runner
	verify string
	closer io.Closer

	logger *logger.Logger
}

// NewApp wires the client for cfg. In remote mode the operator logs in to
// the server up front; otherwise storages are opened locally and the
// verifier runs in-process.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	verifier, closer, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		runner: tui.New(verifier, buildInfo, logger),
		verify: cfg.Verify,
		closer: closer,
		logger: logger,
	}, nil
}

func newVerifier(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (tui.Verifier, io.Closer, error) {
	if cfg.Remote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create server adapter: %w", err)
		}

		if err = serverAdapter.Login(ctx, cfg.Adapter.OperatorPassword); err != nil {
			if errors.Is(err, service.ErrWrongPassword) || errors.Is(err, service.ErrInvalidDataProvided) {
				return nil, nil, fmt.Errorf("operator login: %w", err)
			}
			// the adapter logs in again on the first operator request
			logger.Warn().Err(err).Msg("operator login failed, continuing")
		}

		logger.Info().Str("address", cfg.Adapter.HTTPAddress).Msg("client running in remote mode")
		return serverAdapter, nil, nil
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	logger.Info().Msg("client running in local mode")
	return newLocalVerifier(service.NewLocalServices(storages, cfg.App, logger)), storages, nil
}

// Run starts the UI and blocks until the operator quits or the process
// receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	if err := a.runner.Run(ctx, a.verify); err != nil {
		a.logger.Err(err).Msg("client stopped with error")
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
	}
}
