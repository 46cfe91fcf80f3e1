// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the operator terminal: key editing, ciphertext
// ingestion and the grant/deny dialog.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// TUI runs the operator terminal over a [Verifier].
type TUI struct {
	verifier  Verifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(verifier Verifier, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		verifier:  verifier,
		buildInfo: buildInfo,
		logger:    logger.WithComponent("tui"),
	}
}

// Run blocks until the operator quits. A non-empty ciphertext is ingested
// right after start-up and opens the decision dialog.
func (t *TUI) Run(ctx context.Context, ciphertext string) error {
	model := newAppModel(ctx, t.verifier, t.buildInfo, t.logger)
	model.initialCiphertext = ciphertext

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
