// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	keys      key.Binding
	history   key.Binding
	challenge key.Binding
	about     key.Binding
	reset     key.Binding
	refresh   key.Binding
	grant     key.Binding
	deny      key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	keys:      key.NewBinding(key.WithKeys("ctrl+k")),
	history:   key.NewBinding(key.WithKeys("ctrl+l")),
	challenge: key.NewBinding(key.WithKeys("ctrl+e")),
	about:     key.NewBinding(key.WithKeys("ctrl+b")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	grant:     key.NewBinding(key.WithKeys("y")),
	deny:      key.NewBinding(key.WithKeys("n")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
