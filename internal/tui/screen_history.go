// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyModel lists the most recent journal records, newest first.
type historyModel struct {
	records []models.DecisionRecord
	idx     int
	loading bool
}

func (m historyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.records) == 0:
		b.WriteString("Журнал пуст")
	default:
		b.WriteString("   Время               │ Итог      │ Открытый текст │ Ответ\n")
		b.WriteString("───────────────────────┼───────────┼────────────────┼──────────────────────\n")
		for i, record := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s %-19s │ %-9s │ %-14s │ %s\n",
				cursor,
				record.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				outcomeLabel(record),
				fitText(record.Plaintext, 14),
				fitText(record.Output, 40),
			)
		}
		if m.idx >= 0 && m.idx < len(m.records) {
			selected := m.records[m.idx]
			b.WriteString("\nciphertext: ")
			b.WriteString(fitText(selected.Ciphertext, 70))
		}
	}

	return renderPage(
		titleStyle.Render("ЖУРНАЛ РЕШЕНИЙ"),
		strings.TrimRight(b.String(), "\n"),
		"esc: назад │ ↑/↓: выбор │ r: обновить",
	)
}

func outcomeLabel(record models.DecisionRecord) string {
	switch {
	case record.Failed:
		return "ошибка"
	case record.Granted:
		return "разрешено"
	default:
		return "отклонено"
	}
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenVerify
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.records)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.history.loading = true
		return m, m.cmdLoadHistory()
	}
	return m, nil
}
