// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	help := "ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + " │ " + help
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

var fieldHeader = [2]string{"Field", "Value"}

// renderTable lays out label/value rows with the labels padded to one width.
func renderTable(header [2]string, labels, values []string) string {
	width := lipgloss.Width(header[0])
	for _, label := range labels {
		width = max(width, lipgloss.Width(label))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s │ %s\n", width, header[0], header[1])
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("\n")
	for i, label := range labels {
		fmt.Fprintf(&b, "%-*s │ %s\n", width, label, values[i])
	}

	return b.String()
}

func renderForm(labels []string, inputs []textinput.Model, submitting bool, action, errMsg string) string {
	values := make([]string, len(inputs))
	for i := range inputs {
		values[i] = "[" + inputs[i].View() + "]"
	}

	var b strings.Builder
	b.WriteString(renderTable(fieldHeader, labels, values))

	if submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func newInput(placeholder string, secret bool) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return input
}

// focusRing moves focus between form inputs.
type focusRing struct {
	inputs []textinput.Model
	focus  int
}

func (f *focusRing) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *focusRing) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *focusRing) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
