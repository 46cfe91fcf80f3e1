// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerWidth = 54

var (
	dividerLine = strings.Repeat("─", dividerWidth)
	bodyStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

// renderPage lays out one screen: title, divider, body, divider and the
// hotkey hints. An empty body renders as a single dash.
func renderPage(title, data, hotKeys string) string {
	if strings.TrimSpace(data) == "" {
		data = "-"
	}

	parts := []string{
		title,
		bodyStyle.Render(dividerLine),
		"",
		bodyStyle.Render(data),
		"",
		bodyStyle.Render(dividerLine),
	}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, bodyStyle.Render(helpStyle.Render(hotKeys)))
	}
	parts = append(parts, bodyStyle.Render(helpStyle.Render("ctrl+c: выход")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
