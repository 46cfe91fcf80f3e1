// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenVerify screen = iota
	screenKeys
	screenHistory
	screenChallenge
)

const historyLimit = 20

type appModel struct {
	ctx       context.Context
	verifier  Verifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	copyToClipboard func(string) error

	currentScreen     screen
	initialCiphertext string

	verify    verifyModel
	keys      keysModel
	history   historyModel
	challenge challengeModel

	// pending is the decrypted value awaiting grant or deny; the decision
	// dialog is open while it is set.
	pending   *models.PendingDecision
	resolving bool
	result    *models.DecisionResult

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, verifier Verifier, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	return appModel{
		ctx:             ctx,
		verifier:        verifier,
		buildInfo:       buildInfo,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
		currentScreen:   screenVerify,
		verify:          newVerifyModel(),
		keys:            newKeysModel(),
		challenge:       newChallengeModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.cmdLoadStatus(), m.cmdLoadKeys()}
	if m.initialCiphertext != "" {
		cmds = append(cmds, m.cmdIngest(m.initialCiphertext))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.keys.submitting = true
				return m, m.cmdResetKeys()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.pending != nil {
			return m.updateDecision(msg)
		}
		if m.result != nil {
			return m.updateResult(msg)
		}
		if key.Matches(msg, keys.about) {
			m.showBuildInfo = true
			return m, nil
		}
	case statusLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading decision status failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.verify.state = msg.status.State
		m.verify.lastOutput = msg.status.LastOutput
		if msg.status.State == models.StateAwaitingDecision && msg.status.Pending != nil && m.pending == nil {
			m.pending = msg.status.Pending
		}
		return m, nil
	case ingestedMsg:
		m.verify.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrMalformedCiphertext) {
				m.verify.state = models.StateIdle
				m.verify.lastOutput = models.OutputParseError
				m.verify.failed = true
				return m, nil
			}
			m.logger.Err(msg.err).Msg("ingest failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		pending := msg.pending
		m.pending = &pending
		m.result = nil
		m.verify.state = models.StateAwaitingDecision
		m.verify.failed = false
		m.verify.input.Reset()
		return m, nil
	case resolvedMsg:
		m.resolving = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, service.ErrInvalidKeys):
				m.showErrorf(fmt.Sprintf("Ключи повреждены, исправьте их и повторите: %v", msg.err))
			case errors.Is(msg.err, service.ErrNoPendingDecision):
				m.pending = nil
				m.verify.state = models.StateIdle
				m.showErrorf("Нет ожидающего решения")
			default:
				m.logger.Err(msg.err).Msg("resolve failed")
				m.showErrorf(humanizeServerUnavailableError(msg.err))
			}
			return m, nil
		}
		result := msg.result
		m.pending = nil
		m.result = &result
		m.verify.state = models.StateResolved
		m.verify.lastOutput = result.Output
		m.verify.failed = false
		return m, nil
	case dismissedMsg:
		m.resolving = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrNoPendingDecision) {
			m.logger.Err(msg.err).Msg("dismiss failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pending = nil
		m.verify.state = models.StateIdle
		return m, nil
	case keysLoadedMsg:
		m.keys.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading keys failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.keys.setValues(msg.keys)
		return m, nil
	case keysSavedMsg:
		m.keys.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrInvalidKeys) {
				m.keys.errMsg = msg.err.Error()
				return m, nil
			}
			m.logger.Err(msg.err).Msg("saving keys failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.keys.errMsg = ""
		m.keys.setValues(msg.keys)
		if msg.reset {
			m.keys.status = "Ключи сброшены к значениям по умолчанию"
		} else {
			m.keys.status = "Ключи сохранены"
		}
		return m, cmdClearStatus()
	case challengeDoneMsg:
		m.challenge.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrInvalidPlaintext) || errors.Is(msg.err, service.ErrInvalidKeys) {
				m.challenge.errMsg = msg.err.Error()
				m.challenge.result = nil
				return m, nil
			}
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		challenge := msg.challenge
		m.challenge.errMsg = ""
		m.challenge.result = &challenge
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading history failed")
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.history.records = msg.records
		if m.history.idx >= len(m.history.records) {
			m.history.idx = len(m.history.records) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.verify.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.verify.status = ""
		m.keys.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenVerify:
		return m.updateVerify(msg)
	case screenKeys:
		return m.updateKeys(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenChallenge:
		return m.updateChallenge(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenVerify:
		body = m.verify.View()
	case screenKeys:
		body = m.keys.View()
	case screenHistory:
		body = m.history.View()
	case screenChallenge:
		body = m.challenge.View()
	}

	switch {
	case m.pending != nil:
		body += "\n\n" + renderDecisionDialog(*m.pending, m.resolving)
	case m.result != nil:
		body += "\n\n" + renderResultDialog(*m.result)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// updateDecision handles keys while the decision dialog is open.
func (m appModel) updateDecision(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.resolving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.grant):
		m.resolving = true
		return m, m.cmdResolve(true)
	case key.Matches(msg, keys.deny):
		m.resolving = true
		return m, m.cmdResolve(false)
	case key.Matches(msg, keys.esc):
		m.resolving = true
		return m, m.cmdDismiss()
	}
	return m, nil
}

func (m appModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyToClipboard(m.result.Output)
	case key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc):
		m.result = nil
	}
	return m, nil
}

func (m appModel) cmdLoadStatus() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		status, err := verifier.Status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m appModel) cmdIngest(ciphertext string) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		pending, err := verifier.Ingest(ctx, ciphertext)
		return ingestedMsg{pending: pending, err: err}
	}
}

func (m appModel) cmdResolve(grant bool) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		result, err := verifier.Resolve(ctx, grant)
		return resolvedMsg{result: result, err: err}
	}
}

func (m appModel) cmdDismiss() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		return dismissedMsg{err: verifier.Dismiss(ctx)}
	}
}

func (m appModel) cmdLoadKeys() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		keys, err := verifier.GetKeys(ctx)
		return keysLoadedMsg{keys: keys, err: err}
	}
}

func (m appModel) cmdSaveKeys(triple models.KeyTriple) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		saved, err := verifier.SaveKeys(ctx, triple)
		return keysSavedMsg{keys: saved, err: err}
	}
}

func (m appModel) cmdResetKeys() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		keys, err := verifier.ResetKeys(ctx)
		return keysSavedMsg{keys: keys, reset: true, err: err}
	}
}

func (m appModel) cmdChallenge(plaintext string) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		challenge, err := verifier.Challenge(ctx, plaintext)
		return challengeDoneMsg{challenge: challenge, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		records, err := verifier.History(ctx, historyLimit)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m appModel) cmdCopyToClipboard(text string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
