// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// verifyModel is the start screen: a single input for an L-format
// ciphertext and the outcome of the last cycle.
type verifyModel struct {
	input      textinput.Model
	submitting bool

	state      models.VerifyState
	lastOutput string
	failed     bool
	status     string
}

func newVerifyModel() verifyModel {
	input := textinput.New()
	input.Placeholder = "6L5L1L"
	input.CharLimit = 4096
	input.Width = 60
	input.Focus()

	return verifyModel{
		input: input,
		state: models.StateIdle,
	}
}

func (m verifyModel) View() string {
	var b strings.Builder
	b.WriteString("Состояние │ ")
	b.WriteString(string(m.state))
	b.WriteString("\n")
	b.WriteString("Результат │ ")
	switch {
	case m.lastOutput == "":
		b.WriteString("-")
	case m.failed:
		b.WriteString(errorStyle.Render(m.lastOutput))
	default:
		b.WriteString(m.lastOutput)
	}
	b.WriteString("\n\n")
	b.WriteString("verify    │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Расшифровка...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(
		titleStyle.Render("ПРОВЕРКА"),
		strings.TrimRight(b.String(), "\n"),
		"enter: расшифровать │ ctrl+k: ключи │ ctrl+l: журнал │ ctrl+e: challenge │ ctrl+b: о программе",
	)
}

func (m appModel) updateVerify(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.verify.submitting {
				return m, nil
			}
			m.verify.submitting = true
			return m, m.cmdIngest(strings.TrimSpace(m.verify.input.Value()))
		case key.Matches(keyMsg, keys.keys):
			m.currentScreen = screenKeys
			m.keys.loading = true
			m.keys.errMsg = ""
			focusCmd := m.keys.focusInput()
			return m, tea.Batch(focusCmd, m.cmdLoadKeys())
		case key.Matches(keyMsg, keys.history):
			m.currentScreen = screenHistory
			m.history.loading = true
			return m, m.cmdLoadHistory()
		case key.Matches(keyMsg, keys.challenge):
			m.currentScreen = screenChallenge
			m.challenge.errMsg = ""
			focusCmd := m.challenge.input.Focus()
			return m, focusCmd
		}
	}

	var cmd tea.Cmd
	m.verify.input, cmd = m.verify.input.Update(msg)
	return m, cmd
}
