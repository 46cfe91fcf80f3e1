// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Ошибка"),
		"",
		m.message,
		"",
		helpStyle.Render("enter / esc закрыть"),
	))
}
