// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// confirmModel asks a yes/no question before a destructive action such as a
// key reset.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.message,
		"",
		helpStyle.Render("y да    n нет"),
	))
}
