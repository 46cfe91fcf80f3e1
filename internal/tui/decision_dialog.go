// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

func renderDecisionDialog(pending models.PendingDecision, resolving bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Запрос на авторизацию"))
	b.WriteString("\n\n")
	if pending.Ciphertext != "" {
		b.WriteString("verify:        ")
		b.WriteString(fitText(pending.Ciphertext, 60))
		b.WriteString("\n")
	}
	b.WriteString("Расшифровано:  ")
	b.WriteString(pending.Plaintext)
	b.WriteString("\n\n")

	if resolving {
		b.WriteString("[Обработка...]")
	} else {
		b.WriteString("y разрешить    n отклонить    esc отменить")
	}

	return overlayBoxStyle.Render(b.String())
}

func renderResultDialog(result models.DecisionResult) string {
	var b strings.Builder
	if result.Granted {
		b.WriteString(grantedStyle.Render("Авторизация разрешена"))
		b.WriteString("\n\n")
		b.WriteString(result.Output)
	} else {
		b.WriteString(errorStyle.Render(result.Output))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("c копировать    enter / esc закрыть"))

	return overlayBoxStyle.Render(b.String())
}
