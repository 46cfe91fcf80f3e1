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

// challengeModel encrypts a decimal plaintext with (e, n) so the result can
// be fed back as a verify value.
type challengeModel struct {
	input      textinput.Model
	submitting bool
	result     *models.ChallengeResponse
	errMsg     string
}

func newChallengeModel() challengeModel {
	input := textinput.New()
	input.Placeholder = "65"
	input.CharLimit = 1024
	input.Width = 40

	return challengeModel{input: input}
}

func (m challengeModel) View() string {
	var b strings.Builder
	b.WriteString("Открытый текст │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Шифрование...]\n")
	}
	if m.result != nil {
		b.WriteString("\nverify │ ")
		b.WriteString(m.result.Verify)
		b.WriteString("\nпуть   │ ")
		b.WriteString(m.result.Path)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		titleStyle.Render("CHALLENGE"),
		strings.TrimRight(b.String(), "\n"),
		"esc: назад │ enter: зашифровать │ tab: проверить результат",
	)
}

func (m appModel) updateChallenge(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenVerify
			m.challenge.input.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.challenge.submitting {
				return m, nil
			}
			m.challenge.submitting = true
			return m, m.cmdChallenge(strings.TrimSpace(m.challenge.input.Value()))
		case key.Matches(keyMsg, keys.tab):
			if m.challenge.result == nil || m.verify.submitting {
				return m, nil
			}
			m.currentScreen = screenVerify
			m.challenge.input.Blur()
			m.verify.submitting = true
			return m, m.cmdIngest(m.challenge.result.Verify)
		}
	}

	var cmd tea.Cmd
	m.challenge.input, cmd = m.challenge.input.Update(msg)
	return m, cmd
}
