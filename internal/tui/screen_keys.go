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

const (
	keyFieldE = iota
	keyFieldD
	keyFieldN
)

// keysModel edits the e, d and n fields of the key triple in L-format.
type keysModel struct {
	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool
	errMsg     string
	status     string
}

func newKeysModel() keysModel {
	inputs := make([]textinput.Model, 3)
	for i, placeholder := range []string{"e", "d", "n"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 4096
		in.Width = 60
		inputs[i] = in
	}
	inputs[keyFieldE].Focus()

	return keysModel{inputs: inputs, loading: true}
}

func (m *keysModel) setValues(triple models.KeyTriple) {
	m.inputs[keyFieldE].SetValue(triple.E)
	m.inputs[keyFieldD].SetValue(triple.D)
	m.inputs[keyFieldN].SetValue(triple.N)
}

func (m keysModel) triple() models.KeyTriple {
	return models.KeyTriple{
		E: strings.TrimSpace(m.inputs[keyFieldE].Value()),
		D: strings.TrimSpace(m.inputs[keyFieldD].Value()),
		N: strings.TrimSpace(m.inputs[keyFieldN].Value()),
	}
}

func (m *keysModel) focusInput() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[m.focus].Focus()
}

func (m *keysModel) focusNext() tea.Cmd {
	m.focus = (m.focus + 1) % len(m.inputs)
	return m.focusInput()
}

func (m *keysModel) focusPrev() tea.Cmd {
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	return m.focusInput()
}

func (m keysModel) View() string {
	var b strings.Builder
	b.WriteString("Поле │ Значение (L-формат)\n")
	b.WriteString("─────┼────────────────────────────────────────────\n")
	for i, name := range []string{"e", "d", "n"} {
		b.WriteString(name)
		b.WriteString("    │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	switch {
	case m.loading:
		b.WriteString("\n[Загрузка...]\n")
	case m.submitting:
		b.WriteString("\n[Сохранение...]\n")
	default:
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(
		titleStyle.Render("КЛЮЧИ"),
		strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: след. поле │ enter: сохранить │ ctrl+r: сбросить",
	)
}

func (m appModel) updateKeys(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenVerify
			m.keys.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.tab) || key.Matches(keyMsg, keys.down):
			cmd := m.keys.focusNext()
			return m, cmd
		case key.Matches(keyMsg, keys.backtab) || key.Matches(keyMsg, keys.up):
			cmd := m.keys.focusPrev()
			return m, cmd
		case key.Matches(keyMsg, keys.enter):
			if m.keys.submitting || m.keys.loading {
				return m, nil
			}
			m.keys.errMsg = ""
			m.keys.submitting = true
			return m, m.cmdSaveKeys(m.keys.triple())
		case key.Matches(keyMsg, keys.reset):
			if m.keys.submitting {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = "Сбросить ключи к значениям по умолчанию?"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.keys.inputs[m.keys.focus], cmd = m.keys.inputs[m.keys.focus].Update(msg)
	return m, cmd
}
