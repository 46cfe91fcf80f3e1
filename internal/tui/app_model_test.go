// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/mock"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var toyKeys = models.KeyTriple{E: "17L", D: "2753L", N: "3233L"}

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	verifier := mock.NewMockServerAdapter(ctrl)

	m := newAppModel(context.Background(), verifier, models.NewAppBuildInfo("v1", "", ""), logger.Nop())
	m.copyToClipboard = func(string) error { return nil }
	return m, verifier
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// withPending returns m with the decision dialog open for the toy ciphertext.
func withPending(t *testing.T, m appModel) appModel {
	t.Helper()
	m, _ = update(t, m, ingestedMsg{pending: models.PendingDecision{Ciphertext: "2790L", Plaintext: "65"}})
	require.NotNil(t, m.pending)
	return m
}

// ── start-up ────────────────────────────────────────────────────────────────

func TestInit_BatchesStartupCommands(t *testing.T) {
	m, _ := newTestModel(t)

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	assert.Len(t, batch, 3)

	m.initialCiphertext = "2790L"
	batch, ok = m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	assert.Len(t, batch, 4)
}

func TestStatusLoaded_OpensPendingDecision(t *testing.T) {
	m, verifier := newTestModel(t)

	status := models.DecisionStatus{
		State:   models.StateAwaitingDecision,
		Pending: &models.PendingDecision{Ciphertext: "2790L", Plaintext: "65"},
	}
	verifier.EXPECT().Status(gomock.Any()).Return(status, nil)

	m, _ = update(t, m, m.cmdLoadStatus()())

	require.NotNil(t, m.pending)
	assert.Equal(t, "65", m.pending.Plaintext)
	assert.Contains(t, m.View(), "Запрос на авторизацию")
}

func TestStatusLoaded_Error(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, statusLoadedMsg{err: errors.New("dial tcp: connection refused")})

	assert.True(t, m.showError)
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", m.errorOverlay.message)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

// ── ingest ──────────────────────────────────────────────────────────────────

func TestVerify_EnterIngestsInput(t *testing.T) {
	m, verifier := newTestModel(t)
	m.verify.input.SetValue(" 2790L ")

	verifier.EXPECT().Ingest(gomock.Any(), "2790L").
		Return(models.PendingDecision{Ciphertext: "2790L", Plaintext: "65"}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.verify.submitting)

	m, _ = update(t, m, cmd())

	assert.False(t, m.verify.submitting)
	require.NotNil(t, m.pending)
	assert.Equal(t, "65", m.pending.Plaintext)
	assert.Equal(t, models.StateAwaitingDecision, m.verify.state)
	assert.Empty(t, m.verify.input.Value())
	assert.Contains(t, m.View(), "Расшифровано:  65")
}

func TestVerify_MalformedCiphertextShowsParseError(t *testing.T) {
	m, verifier := newTestModel(t)

	verifier.EXPECT().Ingest(gomock.Any(), "").
		Return(models.PendingDecision{}, fmt.Errorf("%w: %s", service.ErrMalformedCiphertext, models.OutputParseError))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.Nil(t, m.pending)
	assert.False(t, m.showError)
	assert.True(t, m.verify.failed)
	assert.Equal(t, models.OutputParseError, m.verify.lastOutput)
	assert.Equal(t, models.StateIdle, m.verify.state)
}

func TestVerify_IngestReplacesResult(t *testing.T) {
	m, _ := newTestModel(t)
	m.result = &models.DecisionResult{Output: models.OutputDenied}

	m = withPending(t, m)
	assert.Nil(t, m.result)
}

// ── decision dialog ─────────────────────────────────────────────────────────

func TestDecision_Grant(t *testing.T) {
	m, verifier := newTestModel(t)
	m = withPending(t, m)

	verifier.EXPECT().Resolve(gomock.Any(), true).
		Return(models.DecisionResult{Granted: true, Output: "[2215]"}, nil)

	m, cmd := update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.resolving)

	// keys are ignored while a decision is in flight
	m, ignored := update(t, m, keyRunes("n"))
	assert.Nil(t, ignored)

	m, _ = update(t, m, cmd())

	assert.Nil(t, m.pending)
	require.NotNil(t, m.result)
	assert.Equal(t, "[2215]", m.result.Output)
	assert.Equal(t, models.StateResolved, m.verify.state)
	assert.Equal(t, "[2215]", m.verify.lastOutput)
	assert.Contains(t, m.View(), "Авторизация разрешена")
}

func TestDecision_Deny(t *testing.T) {
	m, verifier := newTestModel(t)
	m = withPending(t, m)

	verifier.EXPECT().Resolve(gomock.Any(), false).
		Return(models.DecisionResult{Output: models.OutputDenied}, nil)

	m, cmd := update(t, m, keyRunes("n"))
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.result)
	assert.False(t, m.result.Granted)
	assert.Equal(t, models.OutputDenied, m.verify.lastOutput)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.result)
}

func TestDecision_Dismiss(t *testing.T) {
	m, verifier := newTestModel(t)
	m = withPending(t, m)

	verifier.EXPECT().Dismiss(gomock.Any()).Return(nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, cmd())

	assert.Nil(t, m.pending)
	assert.Nil(t, m.result)
	assert.Equal(t, models.StateIdle, m.verify.state)
}

func TestDecision_BrokenKeysKeepPending(t *testing.T) {
	m, verifier := newTestModel(t)
	m = withPending(t, m)

	verifier.EXPECT().Resolve(gomock.Any(), true).
		Return(models.DecisionResult{}, fmt.Errorf("%w: field n", service.ErrInvalidKeys))

	m, cmd := update(t, m, keyRunes("y"))
	m, _ = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.NotNil(t, m.pending)
	assert.False(t, m.resolving)
}

func TestDecision_NothingPendingClosesDialog(t *testing.T) {
	m, _ := newTestModel(t)
	m = withPending(t, m)

	m, _ = update(t, m, resolvedMsg{err: service.ErrNoPendingDecision})

	assert.Nil(t, m.pending)
	assert.True(t, m.showError)
}

func TestResult_Copy(t *testing.T) {
	m, _ := newTestModel(t)
	m.result = &models.DecisionResult{Granted: true, Output: "[2215]"}

	var copied string
	m.copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	m, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, clearCmd := update(t, m, cmd())

	assert.Equal(t, "[2215]", copied)
	assert.Equal(t, "Скопировано!", m.verify.status)
	assert.NotNil(t, clearCmd)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.verify.status)
}

func TestResult_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m.result = &models.DecisionResult{Granted: true, Output: "[2215]"}
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	m, cmd := update(t, m, keyRunes("c"))
	m, _ = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "no clipboard")
}

// ── keys screen ─────────────────────────────────────────────────────────────

func TestKeys_LoadAndSave(t *testing.T) {
	m, verifier := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Equal(t, screenKeys, m.currentScreen)
	assert.True(t, m.keys.loading)

	verifier.EXPECT().GetKeys(gomock.Any()).Return(toyKeys, nil)
	m, _ = update(t, m, m.cmdLoadKeys()())

	assert.False(t, m.keys.loading)
	assert.Equal(t, toyKeys, m.keys.triple())

	verifier.EXPECT().SaveKeys(gomock.Any(), toyKeys).Return(toyKeys, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.False(t, m.keys.submitting)
	assert.Equal(t, "Ключи сохранены", m.keys.status)
	assert.Empty(t, m.keys.errMsg)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenVerify, m.currentScreen)
}

func TestKeys_InvalidTripleShowsReason(t *testing.T) {
	m, verifier := newTestModel(t)
	m.currentScreen = screenKeys
	m.keys.loading = false
	m.keys.setValues(models.KeyTriple{E: "17L", D: "2753L", N: "xL"})

	verifier.EXPECT().SaveKeys(gomock.Any(), gomock.Any()).
		Return(models.KeyTriple{}, fmt.Errorf("%w: field n: malformed fragment", service.ErrInvalidKeys))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.False(t, m.showError)
	assert.Contains(t, m.keys.errMsg, "field n")
	assert.Contains(t, m.View(), "field n")
}

func TestKeys_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenKeys

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, keyFieldD, m.keys.focus)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, keyFieldE, m.keys.focus)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, keyFieldN, m.keys.focus)
}

func TestKeys_ResetAsksForConfirmation(t *testing.T) {
	m, verifier := newTestModel(t)
	m.currentScreen = screenKeys
	m.keys.loading = false
	m.keys.setValues(toyKeys)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, m.showConfirm)

	// "n" backs out without touching the keys
	m, cmd := update(t, m, keyRunes("n"))
	assert.False(t, m.showConfirm)
	assert.Nil(t, cmd)

	defaults := models.KeyTriple{E: "5537L6L", D: "3473L6035L3590L9759L86L", N: "3761L9429L1900L4325L1686L"}
	verifier.EXPECT().ResetKeys(gomock.Any()).Return(defaults, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, cmd = update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, defaults, m.keys.triple())
	assert.Equal(t, "Ключи сброшены к значениям по умолчанию", m.keys.status)
}

// ── history / challenge ─────────────────────────────────────────────────────

func TestHistory_LoadAndNavigate(t *testing.T) {
	m, verifier := newTestModel(t)

	records := []models.DecisionRecord{
		{ID: "b", Plaintext: "65", Granted: true, Output: "[2215]"},
		{ID: "a", Plaintext: "65", Output: models.OutputDenied},
	}
	verifier.EXPECT().History(gomock.Any(), uint64(historyLimit)).Return(records, nil).Times(2)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, screenHistory, m.currentScreen)
	m, _ = update(t, m, cmd())

	require.Len(t, m.history.records, 2)
	assert.Contains(t, m.View(), "разрешено")
	assert.Contains(t, m.View(), "отклонено")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.history.idx)

	m, cmd = update(t, m, keyRunes("r"))
	assert.True(t, m.history.loading)
	m, _ = update(t, m, cmd())
	assert.False(t, m.history.loading)
}

func TestChallenge_EncryptAndVerify(t *testing.T) {
	m, verifier := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, screenChallenge, m.currentScreen)
	m.challenge.input.SetValue("65")

	verifier.EXPECT().Challenge(gomock.Any(), "65").
		Return(models.ChallengeResponse{Verify: "2790L", Path: "/api/verify?verify=2790L"}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	require.NotNil(t, m.challenge.result)
	assert.Contains(t, m.View(), "/api/verify?verify=2790L")

	verifier.EXPECT().Ingest(gomock.Any(), "2790L").
		Return(models.PendingDecision{Ciphertext: "2790L", Plaintext: "65"}, nil)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, screenVerify, m.currentScreen)
	m, _ = update(t, m, cmd())
	require.NotNil(t, m.pending)
}

func TestChallenge_InvalidPlaintext(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenChallenge

	m, _ = update(t, m, challengeDoneMsg{err: fmt.Errorf("%w: not a decimal number", service.ErrInvalidPlaintext)})

	assert.False(t, m.showError)
	assert.Nil(t, m.challenge.result)
	assert.Contains(t, m.challenge.errMsg, "invalid plaintext")
}

// ── global keys ─────────────────────────────────────────────────────────────

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.err, ErrUserQuit)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBuildInfoToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "go-rsa-verifier")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "错误", fitText("错误：无法", 2))
}
